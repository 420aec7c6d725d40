// Package handlers implements the business logic for CLI commands.
//
// Handler functions are framework-agnostic and can be tested independently
// of the CLI framework. External collaborators are reached through factory
// function variables that tests replace.
package handlers

import (
	"context"
	"fmt"

	"github.com/cosmodeploy/cosmoboot/internal/config"
)

// Factory function variables - can be replaced in tests.
var (
	// loadConfigFile loads and validates a deployment document.
	loadConfigFile = config.Load
)

// resolveConfigPath applies the default document name when no path was given
// on the command line.
func resolveConfigPath(path string) string {
	if path == "" {
		return config.DefaultConfigFilename
	}
	return path
}

// Validate loads a deployment document and reports the result. The loader
// fails with a dotted-path error on the first schema violation.
func Validate(_ context.Context, configPath string) error {
	path := resolveConfigPath(configPath)

	cfg, err := loadConfigFile(path)
	if err != nil {
		return fmt.Errorf("%s is not valid: %w", path, err)
	}

	fmt.Printf("%s is valid\n", path)
	printSummary(cfg)
	return nil
}

func printSummary(cfg *config.Config) {
	mgmt := cfg.Management
	fmt.Println()
	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Keystone:         %s (tenant %s)\n", cfg.Keystone.AuthURL, cfg.Keystone.TenantName)
	fmt.Printf("  Neutron:          %s\n", cfg.Neutron.URL)
	fmt.Printf("  Region:           %s\n", mgmt.Region)
	fmt.Printf("  Instance:         %s (image %s, flavor %s)\n", mgmt.Instance.Name, mgmt.Instance.Image, mgmt.Instance.Flavor)
	fmt.Printf("  Network:          %s\n", describeResource(mgmt.Network.Name, mgmt.Network.Mode()))
	fmt.Printf("  Subnet:           %s (%s, IPv%d)\n", describeResource(mgmt.Subnet.Name, mgmt.Subnet.Mode()), mgmt.Subnet.CIDR, mgmt.Subnet.IPVersion)
	fmt.Printf("  External network: %s\n", describeResource(mgmt.ExtNetwork.Name, mgmt.ExtNetwork.Mode()))
	fmt.Printf("  Router:           %s\n", describeResource(mgmt.Router.Name, mgmt.Router.Mode()))
	fmt.Printf("  Security groups:  %s, %s (manager access from %s)\n",
		mgmt.SecurityGroupUser.Name, mgmt.SecurityGroupManager.Name, mgmt.SecurityGroupManager.CIDR)
	fmt.Printf("  Workdir:          %s (as %s)\n", cfg.Env.WorkDir, cfg.Env.UserOnManagement)
}

func describeResource(name string, mode config.ProvisionMode) string {
	if mode == config.ModeReference {
		return name + " (existing)"
	}
	return name + " (to create)"
}
