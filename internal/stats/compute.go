package stats

import (
	"context"
	"sort"
	"time"

	"github.com/kholcomb/profile-site/internal/profile"
)

const (
	topLanguageLimit = 5
	topRepoLimit     = 6
)

// Collector fetches and aggregates the stats document.
type Collector struct {
	Client *Client
	Now    func() time.Time
}

// Collect fetches user data and repositories and aggregates them into a
// stats document.
func (c Collector) Collect(ctx context.Context) (*profile.StatsData, error) {
	user, err := c.Client.FetchUser(ctx)
	if err != nil {
		return nil, err
	}
	repos, err := c.Client.FetchRepos(ctx)
	if err != nil {
		return nil, err
	}

	now := c.Now
	if now == nil {
		now = time.Now
	}
	return Aggregate(user, repos, now().UTC()), nil
}

// Aggregate computes the stats document from raw API payloads. Forked
// repositories are excluded from stars, languages and top repos.
func Aggregate(user *User, repos []Repo, now time.Time) *profile.StatsData {
	var owned []Repo
	for _, r := range repos {
		if !r.Fork {
			owned = append(owned, r)
		}
	}

	totalStars := 0
	langCounts := map[string]int{}
	for _, r := range owned {
		totalStars += r.Stargazers
		if r.Language != "" {
			langCounts[r.Language]++
		}
	}

	langs := make([]profile.Language, 0, len(langCounts))
	for name, count := range langCounts {
		langs = append(langs, profile.Language{Name: name, Count: count})
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Count != langs[j].Count {
			return langs[i].Count > langs[j].Count
		}
		return langs[i].Name < langs[j].Name
	})
	if len(langs) > topLanguageLimit {
		langs = langs[:topLanguageLimit]
	}

	sort.Slice(owned, func(i, j int) bool {
		if owned[i].Stargazers != owned[j].Stargazers {
			return owned[i].Stargazers > owned[j].Stargazers
		}
		return owned[i].Name < owned[j].Name
	})
	top := owned
	if len(top) > topRepoLimit {
		top = top[:topRepoLimit]
	}
	topRepos := make([]profile.RepoRef, 0, len(top))
	for _, r := range top {
		topRepos = append(topRepos, profile.RepoRef{
			Name:        r.Name,
			URL:         r.HTMLURL,
			Description: r.Description,
			Stars:       r.Stargazers,
		})
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return &profile.StatsData{
		Username:     user.Login,
		Name:         name,
		Bio:          user.Bio,
		Followers:    user.Followers,
		Following:    user.Following,
		PublicRepos:  user.PublicRepos,
		TotalStars:   totalStars,
		TopLanguages: langs,
		TopRepos:     topRepos,
		UpdatedAt:    now.Format(time.RFC3339),
	}
}
