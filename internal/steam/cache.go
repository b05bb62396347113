package steam

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"
)

const (
	// cacheTTL is how long a fetched app list snapshot is considered fresh.
	// New releases stay invisible for up to this long, in exchange for not
	// hammering the bulk listing endpoint on every search.
	cacheTTL = 24 * time.Hour

	// maxSearchResults caps how many matches a single search returns.
	maxSearchResults = 20
)

// ErrEmptyTerm is returned when a search is attempted with an empty term.
var ErrEmptyTerm = errors.New("search term must not be empty")

// AppListCache mirrors the full Steam app list in memory so substring
// search does not hit the Steam API on every request. The snapshot is
// replaced wholesale on refresh; readers never see a partial update.
type AppListCache struct {
	mu        sync.RWMutex
	apps      []AppEntry
	lastFetch time.Time

	fetch func(ctx context.Context) ([]AppEntry, error)
	ttl   time.Duration
	now   func() time.Time
}

// NewAppListCache creates an empty, unrefreshed cache. The fetch function
// supplies the full catalog, normally (*Client).GetAppList.
func NewAppListCache(fetch func(ctx context.Context) ([]AppEntry, error)) *AppListCache {
	return &AppListCache{
		fetch: fetch,
		ttl:   cacheTTL,
		now:   time.Now,
	}
}

// Search returns up to 20 catalog entries whose name contains term,
// case-insensitively, in snapshot order. An empty term is rejected before
// any catalog fetch happens.
func (c *AppListCache) Search(ctx context.Context, term string) ([]AppEntry, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}

	apps := c.snapshot(ctx)

	term = strings.ToLower(term)
	var matches []AppEntry
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Name), term) {
			matches = append(matches, app)
			if len(matches) == maxSearchResults {
				break
			}
		}
	}
	return matches, nil
}

// snapshot returns the current app list, refreshing it first when it is
// empty or older than the TTL. A failed refresh is logged and the stale
// snapshot (possibly empty) is served instead; search degrades to best
// effort against the last known catalog.
func (c *AppListCache) snapshot(ctx context.Context) []AppEntry {
	c.mu.RLock()
	apps, last := c.apps, c.lastFetch
	c.mu.RUnlock()

	if len(apps) > 0 && c.now().Sub(last) < c.ttl {
		return apps
	}

	fresh, err := c.fetch(ctx)
	if err != nil {
		log.Printf("Failed to refresh Steam app list: %v", err)
		return apps
	}

	c.mu.Lock()
	c.apps = fresh
	c.lastFetch = c.now()
	c.mu.Unlock()

	return fresh
}
