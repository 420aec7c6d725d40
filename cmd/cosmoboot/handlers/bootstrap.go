package handlers

import (
	"context"
	"fmt"

	"github.com/cosmodeploy/cosmoboot/internal/config"
	"github.com/cosmodeploy/cosmoboot/internal/openstack"
	"github.com/cosmodeploy/cosmoboot/internal/provisioning"
	"github.com/cosmodeploy/cosmoboot/internal/provisioning/infrastructure"
)

// Factory function variables - can be replaced in tests.
var (
	// connect authenticates and returns the networking client.
	connect = func(cfg *config.Config) (openstack.NetworkingAPI, error) {
		return openstack.Connect(cfg)
	}
)

// Bootstrap validates the deployment document and reconciles the management
// networking topology it describes. With dryRun the plan is printed after
// validation and no cloud calls are made.
func Bootstrap(ctx context.Context, configPath string, dryRun bool) error {
	path := resolveConfigPath(configPath)

	cfg, err := loadConfigFile(path)
	if err != nil {
		return fmt.Errorf("%s is not valid: %w", path, err)
	}

	if dryRun {
		printPlan(cfg)
		return nil
	}

	net, err := connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to OpenStack: %w", err)
	}

	pctx := provisioning.NewContext(ctx, cfg, net)
	phases := []provisioning.Phase{
		infrastructure.NewProvisioner(),
	}

	if err := provisioning.RunPhases(pctx, phases); err != nil {
		return err
	}

	printBootstrapResult(pctx.State)
	return nil
}

func printPlan(cfg *config.Config) {
	mgmt := cfg.Management
	fmt.Println("Bootstrap plan (dry run, nothing was changed):")
	fmt.Printf("  1. %s network %s\n", planVerb(mgmt.Network.Mode()), mgmt.Network.Name)
	fmt.Printf("  2. %s subnet %s (%s)\n", planVerb(mgmt.Subnet.Mode()), mgmt.Subnet.Name, mgmt.Subnet.CIDR)
	fmt.Printf("  3. %s external network %s\n", planVerb(mgmt.ExtNetwork.Mode()), mgmt.ExtNetwork.Name)
	fmt.Printf("  4. %s router %s\n", planVerb(mgmt.Router.Mode()), mgmt.Router.Name)
	fmt.Printf("  5. create security groups %s, %s\n", mgmt.SecurityGroupUser.Name, mgmt.SecurityGroupManager.Name)
}

func planVerb(mode config.ProvisionMode) string {
	if mode == config.ModeReference {
		return "use existing"
	}
	return "create"
}

func printBootstrapResult(state *provisioning.State) {
	fmt.Println()
	fmt.Println("Bootstrap complete")
	fmt.Println("------------------")
	fmt.Printf("  Network:                %s\n", state.NetworkID)
	fmt.Printf("  Subnet:                 %s\n", state.SubnetID)
	fmt.Printf("  External network:       %s\n", state.ExtNetworkID)
	fmt.Printf("  Router:                 %s\n", state.RouterID)
	fmt.Printf("  User security group:    %s\n", state.UserSecurityGroupID)
	fmt.Printf("  Manager security group: %s\n", state.ManagerSecurityGroupID)
}
