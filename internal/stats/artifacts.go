package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kholcomb/profile-site/internal/profile"
)

// Artifact filenames, relative to the repository root. These are the
// files the sync tool is allowed to overwrite on merge conflicts.
const (
	LightSVG  = "light_mode.svg"
	DarkSVG   = "dark_mode.svg"
	CacheFile = "cache/stats.json"
)

// WriteArtifacts writes the stats cache and both themed SVGs under dir.
func WriteArtifacts(dir string, stats *profile.StatsData) error {
	if err := os.MkdirAll(filepath.Join(dir, "cache"), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	doc, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(CacheFile)), append(doc, '\n'), 0o644); err != nil {
		return fmt.Errorf("write stats cache: %w", err)
	}

	for name, theme := range map[string]Theme{LightSVG: ThemeLight, DarkSVG: ThemeDark} {
		svg := RenderSVG(stats, theme)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(svg), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
