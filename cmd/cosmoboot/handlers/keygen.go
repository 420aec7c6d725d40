package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cosmodeploy/cosmoboot/internal/util/keygen"
)

// Factory function variables - can be replaced in tests.
var (
	// generateKeyPair produces a fresh RSA key pair.
	generateKeyPair = keygen.Generate
)

// Keygen generates the management and agent key pairs at the paths named in
// the document's env section.
func Keygen(_ context.Context, configPath string, bits int) error {
	path := resolveConfigPath(configPath)

	cfg, err := loadConfigFile(path)
	if err != nil {
		return fmt.Errorf("%s is not valid: %w", path, err)
	}

	targets := []struct {
		label string
		path  string
	}{
		{"management", cfg.Env.ManagementKeyPath},
		{"agents", cfg.Env.AgentsKeyPath},
	}

	for _, target := range targets {
		keyPath, err := expandHome(target.path)
		if err != nil {
			return err
		}

		kp, err := generateKeyPair(bits)
		if err != nil {
			return fmt.Errorf("failed to generate %s key pair: %w", target.label, err)
		}
		if err := kp.Write(keyPath); err != nil {
			return fmt.Errorf("failed to write %s key pair: %w", target.label, err)
		}

		fmt.Printf("Wrote %s key pair to %s\n", target.label, keyPath)
	}

	return nil
}

// expandHome resolves a leading "~/" against the current user's home
// directory. Documents use it for key paths so they stay portable between
// machines.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory for %s: %w", path, err)
	}
	return filepath.Join(home, path[2:]), nil
}
