package steam

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCache(apps []AppEntry) *AppListCache {
	return &AppListCache{
		fetch: func(ctx context.Context) ([]AppEntry, error) { return apps, nil },
		ttl:   cacheTTL,
		now:   time.Now,
	}
}

func TestSearchEmptyTermDoesNotFetch(t *testing.T) {
	fetches := 0
	cache := &AppListCache{
		fetch: func(ctx context.Context) ([]AppEntry, error) {
			fetches++
			return nil, nil
		},
		ttl: cacheTTL,
		now: time.Now,
	}

	_, err := cache.Search(context.Background(), "")
	require.ErrorIs(t, err, ErrEmptyTerm)
	assert.Equal(t, 0, fetches)
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	cache := fixedCache([]AppEntry{
		{AppID: 70, Name: "Half-Life"},
		{AppID: 620, Name: "Portal 2"},
	})

	results, err := cache.Search(context.Background(), "life")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Half-Life", results[0].Name)
	assert.Equal(t, uint(70), results[0].AppID)

	results, err = cache.Search(context.Background(), "PORTAL")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Portal 2", results[0].Name)

	results, err = cache.Search(context.Background(), "no such game")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchCapsResults(t *testing.T) {
	apps := make([]AppEntry, 50)
	for i := range apps {
		apps[i] = AppEntry{AppID: uint(i + 1), Name: fmt.Sprintf("Game %d", i+1)}
	}
	cache := fixedCache(apps)

	results, err := cache.Search(context.Background(), "game")
	require.NoError(t, err)
	require.Len(t, results, maxSearchResults)
	// Snapshot order, not relevance.
	assert.Equal(t, "Game 1", results[0].Name)
	assert.Equal(t, "Game 20", results[19].Name)
}

func TestSnapshotReusedUntilStale(t *testing.T) {
	current := time.Unix(1700000000, 0)
	fetches := 0
	cache := &AppListCache{
		fetch: func(ctx context.Context) ([]AppEntry, error) {
			fetches++
			return []AppEntry{{AppID: 70, Name: "Half-Life"}}, nil
		},
		ttl: cacheTTL,
		now: func() time.Time { return current },
	}

	_, err := cache.Search(context.Background(), "half")
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)

	// One hour later the snapshot is still fresh.
	current = current.Add(time.Hour)
	_, err = cache.Search(context.Background(), "half")
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)

	// 25 hours after the first fetch it is refreshed exactly once.
	current = current.Add(24 * time.Hour)
	_, err = cache.Search(context.Background(), "half")
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestFailedRefreshKeepsStaleSnapshot(t *testing.T) {
	current := time.Unix(1700000000, 0)
	fail := false
	cache := &AppListCache{
		fetch: func(ctx context.Context) ([]AppEntry, error) {
			if fail {
				return nil, errors.New("steam is down")
			}
			return []AppEntry{{AppID: 70, Name: "Half-Life"}}, nil
		},
		ttl: cacheTTL,
		now: func() time.Time { return current },
	}

	results, err := cache.Search(context.Background(), "half")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// The snapshot expires and the refresh fails: the stale snapshot is
	// still served and the failure never reaches the caller.
	fail = true
	current = current.Add(25 * time.Hour)
	results, err = cache.Search(context.Background(), "half")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Half-Life", results[0].Name)
}

func TestFirstFetchFailureYieldsNoResults(t *testing.T) {
	fail := true
	cache := &AppListCache{
		fetch: func(ctx context.Context) ([]AppEntry, error) {
			if fail {
				return nil, errors.New("steam is down")
			}
			return []AppEntry{{AppID: 70, Name: "Half-Life"}}, nil
		},
		ttl: cacheTTL,
		now: time.Now,
	}

	results, err := cache.Search(context.Background(), "half")
	require.NoError(t, err)
	assert.Empty(t, results)

	// Once a fetch succeeds, searches start returning matches.
	fail = false
	results, err = cache.Search(context.Background(), "half")
	require.NoError(t, err)
	require.Len(t, results, 1)
}
