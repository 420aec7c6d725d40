// Package main is the entry point for the cosmoboot CLI.
//
// cosmoboot validates deployment documents for OpenStack-based Cosmo
// environments and bootstraps the management networking topology they
// describe (network, subnet, external network, router, security groups)
// with ensure-or-create semantics.
//
// Commands: init, validate, bootstrap, keygen.
//
// For detailed usage information, run:
//
//	cosmoboot --help
package main

import (
	"fmt"
	"os"

	"github.com/cosmodeploy/cosmoboot/cmd/cosmoboot/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
