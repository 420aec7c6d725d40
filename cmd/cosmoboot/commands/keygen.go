package commands

import (
	"github.com/spf13/cobra"

	"github.com/cosmodeploy/cosmoboot/cmd/cosmoboot/handlers"
	"github.com/cosmodeploy/cosmoboot/internal/util/keygen"
)

// Keygen returns the command that generates the management and agent RSA key
// pairs at the paths named in the env section.
//
// Optional flags:
//
//	--config, -c: Path to the deployment document (default: cosmoboot.yaml)
//	--bits:       RSA key size (default: 4096)
func Keygen() *cobra.Command {
	var (
		configPath string
		bits       int
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate the management and agent key pairs",
		Long: `Generate the RSA key pairs referenced by the env section.

Private keys are written to env.management_key_path and
env.agents_key_path with 0600 permissions; the matching public keys go
alongside them with a .pub suffix. Existing key files are never
overwritten.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Keygen(cmd.Context(), configPath, bits)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the deployment document (default: cosmoboot.yaml)")
	cmd.Flags().IntVar(&bits, "bits", keygen.DefaultBits, "RSA key size in bits")

	return cmd
}
