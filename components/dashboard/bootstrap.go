package dashboard

import "go.uber.org/zap"

// BootstrapConfig collects everything needed to assemble a working dashboard
// stack around a backend client.
type BootstrapConfig struct {
	Client        DataClient
	Registry      *Registry
	ThemeFile     string
	Logger        *zap.Logger
	ActivityLimit int
	Hooks         []RefreshHook
}

// Stack bundles the wired collaborators so transports and CLIs share one
// assembly path.
type Stack struct {
	Coordinator *Coordinator
	Forms       *FormController
	Shell       *PageShell
	Activity    *ActivityLog
	Broadcast   *BroadcastHook
}

// Bootstrap wires the coordinator, form controller, page shell, activity log,
// and broadcast hook into a ready stack.
func Bootstrap(cfg BootstrapConfig) (*Stack, error) {
	if cfg.Client == nil {
		return nil, errMissingClient
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	activity := NewActivityLog(cfg.ActivityLimit, NewZapTelemetry(cfg.Logger.Named("dashboard")))
	broadcast := NewBroadcastHook()

	var prefs PreferenceStore
	if cfg.ThemeFile != "" {
		prefs = NewFilePreferenceStore(cfg.ThemeFile)
	}

	coordinator, err := NewCoordinator(Options{
		Client:      cfg.Client,
		Registry:    cfg.Registry,
		Preferences: prefs,
		Telemetry:   activity,
		Hooks:       append([]RefreshHook{broadcast}, cfg.Hooks...),
	})
	if err != nil {
		return nil, err
	}

	forms, err := NewFormController(FormOptions{
		Client:    cfg.Client,
		Validator: NewJSONSchemaValidator(),
		Telemetry: activity,
	})
	if err != nil {
		return nil, err
	}

	shell, err := NewPageShell(nil)
	if err != nil {
		return nil, err
	}

	return &Stack{
		Coordinator: coordinator,
		Forms:       forms,
		Shell:       shell,
		Activity:    activity,
		Broadcast:   broadcast,
	}, nil
}
