// Package main is the entry point for the siteflow-quote CLI.
package main

import (
	"os"

	"siteflow-quote/cmd/cli/cmd"
	"siteflow-quote/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		logging.Sync()
		os.Exit(1)
	}
}
