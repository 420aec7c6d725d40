package commands

import (
	"github.com/spf13/cobra"

	"github.com/cosmodeploy/cosmoboot/cmd/cosmoboot/handlers"
	"github.com/cosmodeploy/cosmoboot/internal/config"
)

// Init returns the command that interactively writes a starter deployment
// document.
//
// Optional flags:
//
//	--output, -o: Where to write the document (default: cosmoboot.yaml)
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a deployment document interactively",
		Long: `Create a deployment document through an interactive wizard.

The wizard asks for credentials, endpoints and the deployment name, then
derives the full topology (network, subnet, router, security groups and
key paths) from the name. Edit the generated file to reference
pre-existing resources by setting externally_provisioned: true.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Where to write the deployment document")

	return cmd
}
