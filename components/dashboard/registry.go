package dashboard

import (
	"fmt"
	"sync"
)

// TabHook lets packages register tabs/renderers during init().
type TabHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []TabHook
)

// RegisterTabHook registers a hook executed against new registries.
func RegisterTabHook(h TabHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Registry maps tab codes to their renderers. It owns no view state beyond
// the mapping itself.
type Registry struct {
	mu          sync.RWMutex
	definitions map[Tab]TabDefinition
	renderers   map[Tab]TabRenderer
	order       []Tab
}

// NewRegistry builds a registry with the built-in tabs and applies global hooks.
func NewRegistry() *Registry {
	reg := &Registry{
		definitions: map[Tab]TabDefinition{},
		renderers:   map[Tab]TabRenderer{},
	}
	reg.registerDefaults()
	_ = reg.ApplyHooks()
	return reg
}

func (r *Registry) registerDefaults() {
	for _, def := range DefaultTabDefinitions() {
		_ = r.RegisterDefinition(def)
	}
	_ = r.RegisterRenderer(TabOverview, OverviewRenderer{})
	_ = r.RegisterRenderer(TabInventory, InventoryRenderer{})
	_ = r.RegisterRenderer(TabSales, SalesRenderer{})
	_ = r.RegisterRenderer(TabAlerts, AlertsRenderer{})
	_ = r.RegisterRenderer(TabOrders, OrdersRenderer{})
	_ = r.RegisterRenderer(TabActions, ActionsRenderer{})
	_ = r.RegisterRenderer(TabHistory, HistoryRenderer{})
}

// ApplyHooks executes registered tab hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDefinition stores tab metadata. Re-registering an existing code
// updates metadata without losing the renderer.
func (r *Registry) RegisterDefinition(def TabDefinition) error {
	if def.Code == "" {
		return fmt.Errorf("dashboard: tab definition code is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.definitions[def.Code]; !exists {
		r.order = append(r.order, def.Code)
	}
	r.definitions[def.Code] = def
	return nil
}

// RegisterRenderer associates a renderer with a tab definition.
func (r *Registry) RegisterRenderer(code Tab, renderer TabRenderer) error {
	if code == "" {
		return fmt.Errorf("dashboard: tab code is required to register renderer")
	}
	if renderer == nil {
		return fmt.Errorf("dashboard: renderer cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.definitions[code]; !ok {
		return fmt.Errorf("dashboard: tab definition %s not found", code)
	}
	r.renderers[code] = renderer
	return nil
}

// Definition fetches tab metadata by code.
func (r *Registry) Definition(code Tab) (TabDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[code]
	return def, ok
}

// Renderer fetches the renderer for a tab.
func (r *Registry) Renderer(code Tab) (TabRenderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[code]
	return renderer, ok
}

// Definitions returns all registered definitions in registration order.
func (r *Registry) Definitions() []TabDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]TabDefinition, 0, len(r.order))
	for _, code := range r.order {
		defs = append(defs, r.definitions[code])
	}
	return defs
}
