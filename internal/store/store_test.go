package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mntnorv/wrdl/internal/game"
	"github.com/mntnorv/wrdl/internal/grid"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	g, err := grid.New([]string{"A", "B", "C", "D"}, 2, 2)
	require.NoError(t, err)
	gm := game.FromWords(g, []string{"AB"})

	require.NoError(t, s.Save(ctx, gm))
	got, err := s.Get(ctx, gm.ID)
	require.NoError(t, err)
	require.Same(t, gm, got)

	_, err = s.Get(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, gm.ID))
	_, err = s.Get(ctx, gm.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreEvictsOldest(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)

	g, err := grid.New([]string{"A", "B"}, 2, 1)
	require.NoError(t, err)
	a, b, c := game.FromWords(g, nil), game.FromWords(g, nil), game.FromWords(g, nil)

	require.NoError(t, s.Save(ctx, a))
	require.NoError(t, s.Save(ctx, b))
	require.NoError(t, s.Save(ctx, a)) // re-saving keeps its slot
	require.NoError(t, s.Save(ctx, c))

	_, err = s.Get(ctx, a.ID)
	require.ErrorIs(t, err, ErrNotFound)
	for _, gm := range []*game.Game{b, c} {
		_, err := s.Get(ctx, gm.ID)
		require.NoError(t, err)
	}

	// A deleted game frees its slot.
	require.NoError(t, s.Delete(ctx, b.ID))
	require.NoError(t, s.Save(ctx, a))
	_, err = s.Get(ctx, c.ID)
	require.NoError(t, err)
	_, err = s.Get(ctx, a.ID)
	require.NoError(t, err)
}

func TestSolutionKey(t *testing.T) {
	require.Equal(t, "en@ff|8|2x2|CATS", SolutionKey("en", 0xff, 8, 2, 2, "CATS"))
	require.NotEqual(t, SolutionKey("en", 1, 7, 2, 2, "CATS"), SolutionKey("en", 1, 8, 2, 2, "CATS"))
	require.NotEqual(t, SolutionKey("en", 1, 8, 4, 1, "CATS"), SolutionKey("en", 1, 8, 2, 2, "CATS"))
	require.NotEqual(t, SolutionKey("en", 1, 8, 2, 2, "CATS"), SolutionKey("en", 2, 8, 2, 2, "CATS"))
}

// cacheContract runs the behavior every SolutionCache must share.
func cacheContract(t *testing.T, c SolutionCache) {
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	en := &Solution{
		Key:           SolutionKey("en", 1, 8, 2, 2, "CATS"),
		Dictionary:    "en",
		MaxWordLength: 8,
		Board:         "CATS",
		Words:         []string{"CAT", "CATS"},
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, c.Put(ctx, en))

	got, err := c.Get(ctx, en.Key)
	require.NoError(t, err)
	require.Equal(t, en.Words, got.Words)
	require.Equal(t, "en", got.Dictionary)
	require.Equal(t, 8, got.MaxWordLength)
	require.True(t, en.CreatedAt.Equal(got.CreatedAt))

	empty := &Solution{Key: SolutionKey("fr", 1, 8, 2, 1, "XQ"), Dictionary: "fr", MaxWordLength: 8, Board: "XQ"}
	require.NoError(t, c.Put(ctx, empty))
	got, err = c.Get(ctx, empty.Key)
	require.NoError(t, err)
	require.Empty(t, got.Words)
	require.False(t, got.CreatedAt.IsZero())

	require.NoError(t, c.Purge(ctx, "en"))
	_, err = c.Get(ctx, en.Key)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = c.Get(ctx, empty.Key)
	require.NoError(t, err)
}

func TestMemoryCache(t *testing.T) {
	cacheContract(t, NewMemoryCache())
}

func TestSQLiteCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "cache.db")
	c, err := OpenSQLiteCache(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	cacheContract(t, c)
}

func TestSQLiteCacheReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	c, err := OpenSQLiteCache(path)
	require.NoError(t, err)
	require.NoError(t, c.Put(ctx, &Solution{Key: "k", Dictionary: "en", Board: "AB", Words: []string{"AB"}}))
	require.NoError(t, c.Close())

	// Migrations are idempotent and data survives.
	c, err = OpenSQLiteCache(path)
	require.NoError(t, err)
	defer c.Close()
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []string{"AB"}, got.Words)
}
