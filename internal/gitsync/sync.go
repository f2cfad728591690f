// Package gitsync keeps a local clone in step with the branch the
// scheduled stats job pushes to. Conflicts on the auto-generated files are
// resolved by taking the remote copy; anything else is left for the
// operator.
package gitsync

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// AutoGenerated lists the files the scheduled job regenerates. A merge
// conflict confined to these is always safe to resolve by accepting the
// remote version.
var AutoGenerated = []string{
	"README.md",
	"cache/stats.json",
	"light_mode.svg",
	"dark_mode.svg",
}

// Fixed remote and branch; the tool takes no flags.
const (
	remoteName   = "origin"
	remoteBranch = "main"
)

const (
	colorRed   = "\033[0;31m"
	colorGreen = "\033[0;32m"
	colorReset = "\033[0m"
)

// ConflictError reports a merge that touched files outside the
// auto-generated allowlist. Nothing has been resolved; the merge is left
// in progress for manual resolution.
type ConflictError struct {
	Paths []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("merge conflicts need manual resolution: %s", strings.Join(e.Paths, ", "))
}

// Syncer merges origin/main into the working tree at Dir.
type Syncer struct {
	Dir string
	Out io.Writer
}

// Sync fetches the remote and merges its branch. Returns nil when the
// merge is clean, a no-op, or only conflicted on auto-generated files
// (which are taken from the remote and committed). Any other conflict
// returns a *ConflictError and leaves the merge untouched.
func (s *Syncer) Sync(ctx context.Context) error {
	if _, err := s.git(ctx, "fetch", remoteName); err != nil {
		return err
	}

	if out, err := s.git(ctx, "merge", "--no-edit", remoteName+"/"+remoteBranch); err == nil {
		s.printf("%s%s%s\n", colorGreen, firstLine(out), colorReset)
		return nil
	}

	conflicts, err := s.unmergedPaths(ctx)
	if err != nil {
		return err
	}
	if len(conflicts) == 0 {
		// The merge failed for some other reason (e.g. unrelated
		// histories, dirty tree).
		return fmt.Errorf("merge of %s/%s failed without conflicts to resolve", remoteName, remoteBranch)
	}

	if offending := outsideAllowlist(conflicts); len(offending) > 0 {
		s.printf("%sConflicts need manual resolution:%s\n", colorRed, colorReset)
		for _, p := range conflicts {
			s.printf("%s  %s%s\n", colorRed, p, colorReset)
		}
		return &ConflictError{Paths: conflicts}
	}

	for _, p := range conflicts {
		if _, err := s.git(ctx, "checkout", "--theirs", "--", p); err != nil {
			return err
		}
		if _, err := s.git(ctx, "add", "--", p); err != nil {
			return err
		}
	}
	if _, err := s.git(ctx, "commit", "--no-edit"); err != nil {
		return err
	}

	s.printf("%sAccepted remote versions of: %s%s\n", colorGreen, strings.Join(conflicts, ", "), colorReset)
	return nil
}

func (s *Syncer) unmergedPaths(ctx context.Context) ([]string, error) {
	out, err := s.git(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func outsideAllowlist(paths []string) []string {
	allowed := make(map[string]bool, len(AutoGenerated))
	for _, p := range AutoGenerated {
		allowed[p] = true
	}
	var offending []string
	for _, p := range paths {
		if !allowed[p] {
			offending = append(offending, p)
		}
	}
	return offending
}

func (s *Syncer) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return strings.TrimSpace(stdout.String()),
			fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (s *Syncer) printf(format string, args ...any) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
