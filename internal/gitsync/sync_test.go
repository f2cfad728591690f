package gitsync

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func commitAll(t *testing.T, dir, msg string) {
	t.Helper()
	runGit(t, dir, "add", "-A")
	runGit(t, dir, "commit", "-m", msg)
}

// setupRepos creates an upstream repo with the generated files committed
// and a clone of it, and returns both paths.
func setupRepos(t *testing.T) (upstream, clone string) {
	t.Helper()
	requireGit(t)

	upstream = filepath.Join(t.TempDir(), "upstream")
	require.NoError(t, os.MkdirAll(upstream, 0o755))
	runGit(t, upstream, "init", "-b", "main")
	configureIdentity(t, upstream)

	writeFile(t, upstream, "README.md", "readme v1\n")
	writeFile(t, upstream, "cache/stats.json", `{"total_stars": 1}`+"\n")
	writeFile(t, upstream, "light_mode.svg", "<svg>v1</svg>\n")
	writeFile(t, upstream, "dark_mode.svg", "<svg>v1</svg>\n")
	writeFile(t, upstream, "notes.txt", "notes v1\n")
	commitAll(t, upstream, "initial")

	clone = filepath.Join(t.TempDir(), "clone")
	out, err := exec.Command("git", "clone", upstream, clone).CombinedOutput()
	require.NoError(t, err, "clone: %s", out)
	configureIdentity(t, clone)

	return upstream, clone
}

func configureIdentity(t *testing.T, dir string) {
	t.Helper()
	runGit(t, dir, "config", "user.email", "sync@example.com")
	runGit(t, dir, "config", "user.name", "sync test")
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}

func TestSync_UpToDate(t *testing.T) {
	_, clone := setupRepos(t)

	var out bytes.Buffer
	err := (&Syncer{Dir: clone, Out: &out}).Sync(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Already up to date")
}

func TestSync_CleanMerge(t *testing.T) {
	upstream, clone := setupRepos(t)

	writeFile(t, upstream, "README.md", "readme v2\n")
	commitAll(t, upstream, "regenerate")

	err := (&Syncer{Dir: clone, Out: &bytes.Buffer{}}).Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "readme v2\n", readFile(t, clone, "README.md"))
}

func TestSync_AutoResolvesGeneratedFiles(t *testing.T) {
	upstream, clone := setupRepos(t)

	// Both sides touch the generated files.
	writeFile(t, upstream, "README.md", "remote readme\n")
	writeFile(t, upstream, "cache/stats.json", `{"total_stars": 2}`+"\n")
	commitAll(t, upstream, "regenerate")

	writeFile(t, clone, "README.md", "local readme\n")
	writeFile(t, clone, "cache/stats.json", `{"total_stars": 99}`+"\n")
	commitAll(t, clone, "local edits")

	var out bytes.Buffer
	err := (&Syncer{Dir: clone, Out: &out}).Sync(context.Background())
	require.NoError(t, err)

	// Remote wins for generated files, and the merge is committed.
	assert.Equal(t, "remote readme\n", readFile(t, clone, "README.md"))
	assert.Equal(t, `{"total_stars": 2}`+"\n", readFile(t, clone, "cache/stats.json"))
	assert.Empty(t, runGit(t, clone, "diff", "--name-only", "--diff-filter=U"))
	assert.Contains(t, out.String(), "Accepted remote versions")
}

func TestSync_ForeignConflictAborts(t *testing.T) {
	upstream, clone := setupRepos(t)

	writeFile(t, upstream, "README.md", "remote readme\n")
	writeFile(t, upstream, "notes.txt", "remote notes\n")
	commitAll(t, upstream, "remote edits")

	writeFile(t, clone, "README.md", "local readme\n")
	writeFile(t, clone, "notes.txt", "local notes\n")
	commitAll(t, clone, "local edits")

	var out bytes.Buffer
	err := (&Syncer{Dir: clone, Out: &out}).Sync(context.Background())
	require.Error(t, err)

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Paths, "notes.txt")

	// Nothing was resolved, not even the allowlisted file.
	unmerged := runGit(t, clone, "diff", "--name-only", "--diff-filter=U")
	assert.Contains(t, unmerged, "README.md")
	assert.Contains(t, unmerged, "notes.txt")
	assert.Contains(t, out.String(), "manual resolution")
}
