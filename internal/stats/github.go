// Package stats collects GitHub statistics and regenerates the cache
// document and SVG artifacts the profile page is built from.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.github.com"

// Client is a minimal GitHub REST client covering the two endpoints the
// stats job needs.
type Client struct {
	Username   string
	Token      string
	BaseURL    string
	HTTPClient *http.Client
}

// User is the subset of the GitHub user payload the job reads.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
}

// Repo is the subset of the GitHub repository payload the job reads.
type Repo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stargazers  int    `json:"stargazers_count"`
	Fork        bool   `json:"fork"`
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "token "+c.Token)
	}

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("github: GET %s: %s: %s", path, resp.Status, body)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

// FetchUser retrieves the user's basic information.
func (c *Client) FetchUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/"+c.Username, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchRepos retrieves all of the user's repositories, following
// pagination until an empty page comes back.
func (c *Client) FetchRepos(ctx context.Context) ([]Repo, error) {
	var all []Repo
	for page := 1; ; page++ {
		var batch []Repo
		path := fmt.Sprintf("/users/%s/repos?per_page=100&page=%d", c.Username, page)
		if err := c.get(ctx, path, &batch); err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		all = append(all, batch...)
	}
	return all, nil
}
