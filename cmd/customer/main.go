// Package main is the storefront customer tool: browse the catalog,
// purchase and rate games, and manage the owned-games library.
package main

import (
	"os"

	"github.com/saradorri/gamestore/cmd/customer/commands"
	"github.com/saradorri/gamestore/internal/cli/output"
)

func main() {
	rootCmd := commands.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		output.Error("%s", err.Error())
		os.Exit(1)
	}
}
