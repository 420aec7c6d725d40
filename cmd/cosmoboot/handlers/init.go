package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/cosmodeploy/cosmoboot/internal/config"
)

// Factory function variables - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = config.RunWizard

	// writeConfig writes the document to a file.
	writeConfig = config.Save
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

func printWelcome() {
	fmt.Println()
	fmt.Println("cosmoboot - OpenStack deployment bootstrap")
	fmt.Println("==========================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment document with sensible defaults.")
	fmt.Println("The full topology is derived from the deployment name; edit the")
	fmt.Println("generated file to reference pre-existing resources.")
	fmt.Println()
}

func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Deployment document saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	printSummary(cfg)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  cosmoboot keygen -c %s\n", outputPath)
	fmt.Printf("  cosmoboot bootstrap -c %s --dry-run\n", outputPath)
}
