package commands

import (
	"github.com/spf13/cobra"

	"github.com/cosmodeploy/cosmoboot/cmd/cosmoboot/handlers"
)

// Bootstrap returns the command that provisions the management networking
// topology described by a deployment document.
//
// Optional flags:
//
//	--config, -c: Path to the deployment document (default: cosmoboot.yaml)
//	--dry-run:    Validate and print the plan without touching the cloud
func Bootstrap() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Bootstrap the management networking topology",
		Long: `Bootstrap the management networking topology on OpenStack.

The document is validated first, then each topology resource is
reconciled in dependency order: network, subnet, external network,
router, security groups. Resources marked externally_provisioned must
already exist and are looked up by name; all others are created, and
bootstrap fails if a resource with the same name already exists.

Examples:
  # Bootstrap using cosmoboot.yaml in the current directory
  cosmoboot bootstrap

  # Show what would happen without making any cloud calls
  cosmoboot bootstrap --dry-run

  # Bootstrap a specific environment
  cosmoboot bootstrap -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Bootstrap(cmd.Context(), configPath, dryRun)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the deployment document (default: cosmoboot.yaml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and print the plan without provisioning")

	return cmd
}
