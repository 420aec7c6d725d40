package commands

import (
	"github.com/spf13/cobra"

	"github.com/cosmodeploy/cosmoboot/cmd/cosmoboot/handlers"
)

// Validate returns the command that checks a deployment document against the
// schema without touching the cloud.
//
// Optional flags:
//
//	--config, -c: Path to the deployment document (default: cosmoboot.yaml)
func Validate() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a deployment document",
		Long: `Validate a deployment document against the schema.

Validation is purely local: required fields, URL and CIDR syntax, IP
versions and the externally_provisioned flags are checked, and the first
violation is reported with its dotted field path. No cloud credentials
are used and no network calls are made.

Examples:
  # Validate cosmoboot.yaml in the current directory
  cosmoboot validate

  # Validate a specific document (YAML or JSON)
  cosmoboot validate -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Validate(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the deployment document (default: cosmoboot.yaml)")

	return cmd
}
