package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

const (
	defaultAPIBase = "https://api.github.com"
	defaultUser    = "jvkuechen"
)

// Repo is one public repository worth showing as a project card.
type Repo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	PushedAt    time.Time `json:"pushed_at"`
	Topics      []string  `json:"topics"`
}

// apiRepo mirrors the fields we read from the GitHub list-repos response.
type apiRepo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	PushedAt    time.Time `json:"pushed_at"`
	Topics      []string  `json:"topics"`
	Fork        bool      `json:"fork"`
}

// Client fetches a user's public repositories, with a file cache in front
// to stay under the unauthenticated rate limit.
type Client struct {
	apiBase string
	user    string
	http    *http.Client
	cache   *Cache
}

// Option configures a Client.
type Option func(*Client)

// WithAPIBase overrides the GitHub API base URL.
func WithAPIBase(base string) Option {
	return func(c *Client) { c.apiBase = strings.TrimRight(base, "/") }
}

// WithUser overrides the GitHub account whose repos are listed.
func WithUser(user string) Option {
	return func(c *Client) { c.user = user }
}

// WithCache attaches a file cache. Without one every call hits the API.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient creates a GitHub client. SECGUARD_GH_USER overrides the
// default account.
func NewClient(opts ...Option) *Client {
	c := &Client{
		apiBase: defaultAPIBase,
		user:    defaultUser,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	if v := os.Getenv("SECGUARD_GH_USER"); v != "" {
		c.user = v
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Projects returns the account's showable repos: non-forks with a
// description, most recently pushed first. A fresh cache short-circuits
// the API call; on a fetch failure a stale cache is returned rather than
// the error.
func (c *Client) Projects(ctx context.Context) ([]Repo, error) {
	if c.cache != nil {
		if repos, ok := c.cache.Load(); ok {
			return repos, nil
		}
	}

	repos, err := c.fetch(ctx)
	if err != nil {
		if c.cache != nil {
			if repos, ok := c.cache.LoadStale(); ok {
				return repos, nil
			}
		}
		return nil, err
	}

	if c.cache != nil {
		// Cache write failure is not worth failing the listing over.
		_ = c.cache.Save(repos)
	}
	return repos, nil
}

func (c *Client) fetch(ctx context.Context) ([]Repo, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=100&type=public", c.apiBase, c.user)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "secguard")

	// Support optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching repos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var raw []apiRepo
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing repos JSON: %w", err)
	}

	return filterRepos(raw), nil
}

// filterRepos keeps non-forks with a non-empty description, newest push
// first. Repos without a description are hidden on purpose: the account
// controls what appears by describing the repo.
func filterRepos(raw []apiRepo) []Repo {
	repos := make([]Repo, 0, len(raw))
	for _, r := range raw {
		if r.Fork || strings.TrimSpace(r.Description) == "" {
			continue
		}
		repos = append(repos, Repo{
			Name:        r.Name,
			Description: r.Description,
			URL:         r.HTMLURL,
			Language:    r.Language,
			Stars:       r.Stars,
			PushedAt:    r.PushedAt,
			Topics:      r.Topics,
		})
	}
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].PushedAt.After(repos[j].PushedAt)
	})
	return repos
}
