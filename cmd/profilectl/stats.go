package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kholcomb/profile-site/internal/stats"
)

var statsCommand = &cobra.Command{
	Use:   "stats",
	Short: "Regenerate the GitHub stats cache and SVG graphics",
	Long:  "Fetches user data and repositories from the GitHub API, aggregates stars, languages and top repositories, and rewrites cache/stats.json plus the light and dark SVG artifacts.",
	RunE:  runStatsCmd,
}

var (
	statsUsername string
	statsOutDir   string
)

func init() {
	statsCommand.Flags().StringVarP(&statsUsername, "username", "u", "kholcomb", "GitHub username to collect stats for")
	statsCommand.Flags().StringVarP(&statsOutDir, "out", "o", ".", "Directory to write cache/ and the SVG artifacts into")

	rootCmd.AddCommand(statsCommand)
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cmd.Printf("Fetching GitHub stats for @%s...\n", statsUsername)

	collector := stats.Collector{
		Client: &stats.Client{
			Username: statsUsername,
			Token:    os.Getenv("GITHUB_TOKEN"),
		},
	}
	data, err := collector.Collect(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("✓ Found %d repositories\n", data.PublicRepos)
	cmd.Printf("✓ Total stars: %d\n", data.TotalStars)
	cmd.Printf("✓ Followers: %d\n", data.Followers)

	if err := stats.WriteArtifacts(statsOutDir, data); err != nil {
		return err
	}

	cmd.Printf("✓ Wrote %s, %s and %s\n", stats.CacheFile, stats.LightSVG, stats.DarkSVG)
	return nil
}
