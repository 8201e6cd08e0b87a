// Package main is the storefront administration tool: catalog
// maintenance plus a read-only view over every user's purchases.
package main

import (
	"os"

	"github.com/saradorri/gamestore/cmd/admin/commands"
	"github.com/saradorri/gamestore/internal/cli/output"
)

func main() {
	rootCmd := commands.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		output.Error("%s", err.Error())
		os.Exit(1)
	}
}
