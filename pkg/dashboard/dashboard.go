package dashboard

import (
	core "github.com/RaiLord005/inventory-agent-software/components/dashboard"
)

// Coordinator exposes the underlying components/dashboard.Coordinator type.
type Coordinator = core.Coordinator

// Options re-export for convenience.
type Options = core.Options

// Stack re-exports the bootstrapped collaborator bundle.
type Stack = core.Stack

// BootstrapConfig re-exports the bootstrap configuration.
type BootstrapConfig = core.BootstrapConfig

// NewCoordinator proxies to the internal constructor.
func NewCoordinator(opts Options) (*Coordinator, error) {
	return core.NewCoordinator(opts)
}

// Bootstrap proxies to the internal stack assembly.
func Bootstrap(cfg BootstrapConfig) (*Stack, error) {
	return core.Bootstrap(cfg)
}
