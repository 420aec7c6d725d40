// Package infrastructure reconciles the management networking topology:
// network, subnet, external network, router and security groups, in the
// order the router wiring requires.
package infrastructure

import (
	"github.com/cosmodeploy/cosmoboot/internal/provisioning"
)

// Provisioner is the infrastructure phase.
type Provisioner struct{}

// NewProvisioner creates the infrastructure phase.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements provisioning.Phase.
func (p *Provisioner) Name() string {
	return "infrastructure"
}

// Provision implements provisioning.Phase. The ordering is load-bearing: the
// subnet needs the network ID, and the router needs both the external network
// (gateway) and the subnet (interface).
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	if err := p.provisionNetwork(ctx); err != nil {
		return err
	}
	if err := p.provisionSubnet(ctx); err != nil {
		return err
	}
	if err := p.provisionExtNetwork(ctx); err != nil {
		return err
	}
	if err := p.provisionRouter(ctx); err != nil {
		return err
	}
	return p.provisionSecurityGroups(ctx)
}
