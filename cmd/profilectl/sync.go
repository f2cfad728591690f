package main

import (
	"github.com/spf13/cobra"

	"github.com/kholcomb/profile-site/internal/gitsync"
)

var syncCommand = &cobra.Command{
	Use:   "sync",
	Short: "Merge origin/main, auto-accepting the generated files",
	Long:  "Fetches origin and merges origin/main. Conflicts confined to the auto-generated files (README.md, cache/stats.json and the two SVGs) are resolved by taking the remote version and committing; any other conflict is printed and left for manual resolution with a nonzero exit.",
	RunE:  runSyncCmd,
}

func init() {
	rootCmd.AddCommand(syncCommand)
}

func runSyncCmd(cmd *cobra.Command, _ []string) error {
	syncer := &gitsync.Syncer{Dir: ".", Out: cmd.OutOrStdout()}
	return syncer.Sync(cmd.Context())
}
