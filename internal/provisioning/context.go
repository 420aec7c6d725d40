package provisioning

import (
	"context"

	"github.com/cosmodeploy/cosmoboot/internal/config"
	"github.com/cosmodeploy/cosmoboot/internal/openstack"
)

// Phase is one step of the bootstrap.
type Phase interface {
	// Name identifies the phase in progress output and errors.
	Name() string
	// Provision performs the phase, reading and updating the shared context.
	Provision(ctx *Context) error
}

// Context wraps all dependencies and state needed by a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	Net      openstack.NetworkingAPI
	State    *State
	Observer Observer
}

// NewContext creates a provisioning context with an empty state.
func NewContext(ctx context.Context, cfg *config.Config, net openstack.NetworkingAPI) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Net:      net,
		State:    NewState(),
		Observer: NewConsoleObserver(),
	}
}
