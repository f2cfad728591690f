package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// Relative paths of the two documents, mirroring how the page reaches
// them from its own origin.
const (
	ResumePath = "cache/resume_data.json"
	StatsPath  = "cache/stats.json"
)

// Fetcher retrieves one named document.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// DirFetcher reads documents from a local directory. This is the default:
// the server and the scheduled job share a working tree, so the cache
// files sit next to the binary.
type DirFetcher struct {
	Dir string
}

// Fetch implements Fetcher.
func (f DirFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.Dir, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// HTTPFetcher retrieves documents relative to a base URL, for deployments
// where the cache lives on another origin (e.g. raw repository contents).
type HTTPFetcher struct {
	Client  *http.Client
	BaseURL string
}

// Fetch implements Fetcher.
func (f HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	u, err := url.JoinPath(f.BaseURL, name)
	if err != nil {
		return nil, fmt.Errorf("build url for %s: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", name, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	return body, nil
}

// Loader retrieves and decodes both profile documents.
type Loader struct {
	fetcher Fetcher
}

// NewLoader returns a Loader backed by the given fetcher.
func NewLoader(f Fetcher) *Loader {
	return &Loader{fetcher: f}
}

// Load fetches the resume and stats documents concurrently and decodes
// them. It is all-or-nothing: if either document cannot be fetched,
// validated or parsed, both results are discarded and the error is
// returned so the caller can fall back to the static page.
func (l *Loader) Load(ctx context.Context) (*ResumeData, *StatsData, error) {
	var (
		resume ResumeData
		stats  StatsData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.loadInto(gctx, ResumePath, ValidateResume, &resume)
	})
	g.Go(func() error {
		return l.loadInto(gctx, StatsPath, ValidateStats, &stats)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return &resume, &stats, nil
}

func (l *Loader) loadInto(ctx context.Context, name string, validate func([]byte) error, dst any) error {
	raw, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return err
	}
	if err := validate(raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
