package infrastructure

import (
	"github.com/cosmodeploy/cosmoboot/internal/openstack"
	"github.com/cosmodeploy/cosmoboot/internal/provisioning"
)

func (p *Provisioner) provisionRouter(ctx *provisioning.Context) error {
	spec := ctx.Config.Management.Router
	ctx.Observer.Printf("Reconciling router %s...", spec.Name)

	id, err := openstack.EnsureRouter(ctx, ctx.Net, spec, ctx.State.ExtNetworkID, ctx.State.SubnetID)
	if err != nil {
		return err
	}
	ctx.State.RouterID = id
	return nil
}
