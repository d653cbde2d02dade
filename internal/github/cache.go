package github

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "github-repos.json"
	// DefaultCacheTTL matches the unauthenticated rate-limit budget.
	DefaultCacheTTL = 10 * time.Minute
)

// cacheFile is the on-disk shape of a cached repo listing.
type cacheFile struct {
	FetchedAt time.Time `json:"fetched_at"`
	Repos     []Repo    `json:"repos"`
}

// Cache stores a fetched repo listing in a JSON file with a TTL.
type Cache struct {
	dir string
	ttl time.Duration
}

// NewCache creates a repo cache in dir. A non-positive ttl uses the default.
func NewCache(dir string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{dir: dir, ttl: ttl}
}

// Load returns the cached repos if the cache is fresh.
func (c *Cache) Load() ([]Repo, bool) {
	cf, ok := c.read()
	if !ok || time.Since(cf.FetchedAt) > c.ttl {
		return nil, false
	}
	return cf.Repos, true
}

// LoadStale returns the cached repos regardless of age. Used as a
// fallback when the API is unreachable.
func (c *Cache) LoadStale() ([]Repo, bool) {
	cf, ok := c.read()
	if !ok {
		return nil, false
	}
	return cf.Repos, true
}

// Save writes the repos to the cache file, stamping the fetch time.
func (c *Cache) Save(repos []Repo) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(cacheFile{FetchedAt: time.Now(), Repos: repos}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling repo cache: %w", err)
	}

	path := filepath.Join(c.dir, cacheFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing repo cache: %w", err)
	}
	return nil
}

func (c *Cache) read() (cacheFile, bool) {
	data, err := os.ReadFile(filepath.Join(c.dir, cacheFileName))
	if err != nil {
		return cacheFile{}, false
	}
	var cf cacheFile
	if err := json.Unmarshal(data, &cf); err != nil {
		// Corrupt cache is the same as no cache.
		return cacheFile{}, false
	}
	return cf, true
}
