package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	errMissingClient = errors.New("dashboard: data client not configured")

	// ErrUnknownTab is returned for navigation to an unregistered tab.
	ErrUnknownTab = errors.New("dashboard: unknown tab")

	// ErrNavigationSuperseded is returned when a render finishes after a newer
	// navigation has been issued; its result is discarded instead of being
	// committed over the newer view.
	ErrNavigationSuperseded = errors.New("dashboard: navigation superseded")
)

// ModalKind identifies an open modal dialog.
type ModalKind string

const (
	ModalNone        ModalKind = ""
	ModalAddProduct  ModalKind = "add-product"
	ModalRecordSale  ModalKind = "record-sale"
	ModalUpdateStock ModalKind = "update-stock"
)

// Options configures the Coordinator. Collaborators are provided via
// interface so applications and tests can swap implementations.
type Options struct {
	Client      DataClient
	Registry    *Registry
	Preferences PreferenceStore
	Charts      *ChartAdapter
	Telemetry   Telemetry
	Hooks       []RefreshHook
}

// Coordinator owns all mutable view state: the current tab, the theme, the
// open modal, and (through the ChartAdapter) the live chart handles. There
// are no ambient globals; everything hangs off this one value.
type Coordinator struct {
	opts Options

	mu        sync.Mutex
	currentTab Tab
	theme      Theme
	modal      ModalKind
	navToken   string
	cancelNav  context.CancelFunc
	page       *Page
}

// NewCoordinator builds a coordinator with safe defaults and restores the
// persisted theme preference.
func NewCoordinator(opts Options) (*Coordinator, error) {
	if opts.Client == nil {
		return nil, errMissingClient
	}
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.Preferences == nil {
		opts.Preferences = NewInMemoryPreferenceStore()
	}
	if opts.Charts == nil {
		opts.Charts = NewChartAdapter()
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)

	theme, err := opts.Preferences.Theme(context.Background())
	if err != nil {
		theme = DefaultTheme
	}
	if err := opts.Charts.UpdateTheme(theme); err != nil {
		return nil, err
	}

	return &Coordinator{
		opts:       opts,
		currentTab: DefaultTab,
		theme:      theme,
	}, nil
}

// NavigateOption customizes a navigation.
type NavigateOption func(*navigateConfig)

type navigateConfig struct {
	anchor string
}

// WithAnchor scrolls to a named sub-anchor once the render settles.
func WithAnchor(anchor string) NavigateOption {
	return func(cfg *navigateConfig) {
		cfg.anchor = anchor
	}
}

// Navigate switches to a tab: it marks the tab active, cancels the previous
// navigation's in-flight fetches, tears down live charts, and invokes the
// registered renderer. The rendered page is committed only if no newer
// navigation started in the meantime.
func (c *Coordinator) Navigate(ctx context.Context, tab Tab, options ...NavigateOption) (*Page, error) {
	var cfg navigateConfig
	for _, opt := range options {
		opt(&cfg)
	}

	renderer, ok := c.opts.Registry.Renderer(tab)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}

	c.mu.Lock()
	if c.cancelNav != nil {
		c.cancelNav()
	}
	navCtx, cancel := context.WithCancel(ctx)
	token := uuid.NewString()
	c.cancelNav = cancel
	c.navToken = token
	c.currentTab = tab
	c.modal = ModalNone
	theme := c.theme
	c.mu.Unlock()

	c.opts.Charts.DestroyAll()

	page, err := renderer.Render(navCtx, RenderContext{
		Client:    c.opts.Client,
		Charts:    c.opts.Charts,
		Theme:     theme,
		Telemetry: c.opts.Telemetry,
	})
	if err != nil {
		c.opts.Telemetry.Record(ctx, "dashboard.tab.render_error", map[string]any{
			"tab":   string(tab),
			"error": err.Error(),
		})
		return nil, err
	}
	page.Anchor = cfg.anchor

	c.mu.Lock()
	if c.navToken != token {
		c.mu.Unlock()
		return nil, ErrNavigationSuperseded
	}
	c.page = page
	c.mu.Unlock()

	c.opts.Telemetry.Record(ctx, "dashboard.tab.render", map[string]any{
		"tab":    string(tab),
		"anchor": cfg.anchor,
	})
	c.notifyHooks(ctx, PageEvent{Kind: PageEventNavigate, Tab: tab, Theme: theme, At: time.Now()})
	return page, nil
}

// notifyHooks delivers the event to every hook; hook failures are logged,
// never propagated, since the view change already committed.
func (c *Coordinator) notifyHooks(ctx context.Context, event PageEvent) {
	for _, hook := range c.opts.Hooks {
		if err := hook.PageUpdated(ctx, event); err != nil {
			c.opts.Telemetry.Record(ctx, "dashboard.hook.error", map[string]any{
				"kind":  string(event.Kind),
				"error": err.Error(),
			})
		}
	}
}

// Refresh re-renders the current tab, used after a successful form submission.
func (c *Coordinator) Refresh(ctx context.Context) (*Page, error) {
	return c.Navigate(ctx, c.CurrentTab())
}

// CurrentTab returns the active tab.
func (c *Coordinator) CurrentTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTab
}

// Page returns the last committed page, which may be nil before the first
// successful navigation.
func (c *Coordinator) Page() *Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Theme returns the active theme.
func (c *Coordinator) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// ToggleTheme flips the theme, persists the preference, and redraws live
// charts in place. The current tab is untouched.
func (c *Coordinator) ToggleTheme(ctx context.Context) (Theme, error) {
	c.mu.Lock()
	next := c.theme.Toggle()
	c.mu.Unlock()

	// Persist first; the in-memory theme flips only once the save succeeds so
	// memory and disk never disagree.
	if err := c.opts.Preferences.SaveTheme(ctx, next); err != nil {
		return c.Theme(), err
	}
	c.mu.Lock()
	c.theme = next
	c.mu.Unlock()

	if err := c.opts.Charts.UpdateTheme(next); err != nil {
		return next, err
	}
	c.opts.Telemetry.Record(ctx, "dashboard.theme.toggle", map[string]any{
		"theme": string(next),
	})
	c.notifyHooks(ctx, PageEvent{Kind: PageEventTheme, Tab: c.CurrentTab(), Theme: next, At: time.Now()})
	return next, nil
}

// OpenModal records an open modal dialog.
func (c *Coordinator) OpenModal(kind ModalKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = kind
}

// CloseModal dismisses any open modal.
func (c *Coordinator) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = ModalNone
}

// Modal returns the open modal, if any.
func (c *Coordinator) Modal() ModalKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}

// Registry exposes the tab registry for transports building navigation.
func (c *Coordinator) Registry() *Registry {
	return c.opts.Registry
}

// Client exposes the backend data client for transports that stream data
// straight through, such as CSV export.
func (c *Coordinator) Client() DataClient {
	return c.opts.Client
}

// Charts exposes the chart handle registry.
func (c *Coordinator) Charts() *ChartAdapter {
	return c.opts.Charts
}

// Logout terminates the backend session through the API.
func (c *Coordinator) Logout(ctx context.Context) error {
	return c.opts.Client.Logout(ctx)
}
