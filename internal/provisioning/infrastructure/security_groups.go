package infrastructure

import (
	"github.com/cosmodeploy/cosmoboot/internal/openstack"
	"github.com/cosmodeploy/cosmoboot/internal/provisioning"
)

func (p *Provisioner) provisionSecurityGroups(ctx *provisioning.Context) error {
	mgmt := ctx.Config.Management

	ctx.Observer.Printf("Reconciling security group %s...", mgmt.SecurityGroupUser.Name)
	userID, err := openstack.EnsureSecurityGroup(ctx, ctx.Net, mgmt.SecurityGroupUser.Name)
	if err != nil {
		return err
	}
	ctx.State.UserSecurityGroupID = userID

	ctx.Observer.Printf("Reconciling security group %s...", mgmt.SecurityGroupManager.Name)
	managerID, err := openstack.EnsureSecurityGroup(ctx, ctx.Net, mgmt.SecurityGroupManager.Name)
	if err != nil {
		return err
	}
	ctx.State.ManagerSecurityGroupID = managerID
	return nil
}
