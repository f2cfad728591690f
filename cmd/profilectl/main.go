// Package main provides the profilectl CLI for the profile site's
// operational tasks: regenerating the stats artifacts and syncing the
// local clone with the scheduled job's branch.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profilectl",
	Short: "Operational tooling for the profile site",
	Long:  "profilectl regenerates the GitHub stats cache and SVG artifacts and keeps the local clone in sync with the auto-generated files pushed by the scheduled job.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
