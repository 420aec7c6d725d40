package infrastructure

import (
	"github.com/cosmodeploy/cosmoboot/internal/openstack"
	"github.com/cosmodeploy/cosmoboot/internal/provisioning"
)

func (p *Provisioner) provisionNetwork(ctx *provisioning.Context) error {
	spec := ctx.Config.Management.Network
	ctx.Observer.Printf("Reconciling network %s...", spec.Name)

	id, err := openstack.EnsureNetwork(ctx, ctx.Net, spec, false)
	if err != nil {
		return err
	}
	ctx.State.NetworkID = id
	return nil
}

func (p *Provisioner) provisionSubnet(ctx *provisioning.Context) error {
	spec := ctx.Config.Management.Subnet
	ctx.Observer.Printf("Reconciling subnet %s...", spec.Name)

	id, err := openstack.EnsureSubnet(ctx, ctx.Net, spec, ctx.State.NetworkID)
	if err != nil {
		return err
	}
	ctx.State.SubnetID = id
	return nil
}

func (p *Provisioner) provisionExtNetwork(ctx *provisioning.Context) error {
	spec := ctx.Config.Management.ExtNetwork
	ctx.Observer.Printf("Reconciling external network %s...", spec.Name)

	id, err := openstack.EnsureNetwork(ctx, ctx.Net, spec, true)
	if err != nil {
		return err
	}
	ctx.State.ExtNetworkID = id
	return nil
}
