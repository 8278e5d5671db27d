// internal/store/cache.go
//
// Solution cache: word lists already computed for a board, keyed by
// dictionary name and version, word length cap, board dimensions and board
// string. An entry computed against a replaced dictionary snapshot carries
// the old version and is never returned for the new one.

package store

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// Solution is one cached search result.
type Solution struct {
	Key           string
	Dictionary    string
	MaxWordLength int
	Board         string
	Words         []string // sorted
	CreatedAt     time.Time
}

// SolutionKey builds the cache key for a search. The dimensions are part of
// the key since one board string can be laid out in several shapes.
func SolutionKey(dictionary string, version uint64, maxWordLength, columns, rows int, board string) string {
	return dictionary + "@" + strconv.FormatUint(version, 16) + "|" +
		strconv.Itoa(maxWordLength) + "|" +
		strconv.Itoa(columns) + "x" + strconv.Itoa(rows) + "|" + board
}

// SolutionCache stores solved boards.
type SolutionCache interface {
	// Get returns the cached solution for key, or ErrNotFound.
	Get(ctx context.Context, key string) (*Solution, error)

	// Put stores s under s.Key, replacing any previous entry.
	Put(ctx context.Context, s *Solution) error

	// Purge drops every entry solved with the given dictionary.
	Purge(ctx context.Context, dictionary string) error
}

type memoryCache struct {
	mu        sync.RWMutex
	solutions map[string]*Solution
}

// NewMemoryCache constructs an in-memory SolutionCache.
func NewMemoryCache() SolutionCache {
	return &memoryCache{solutions: make(map[string]*Solution)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (*Solution, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s, ok := c.solutions[key]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (c *memoryCache) Put(ctx context.Context, s *Solution) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.solutions[s.Key] = s
	return nil
}

func (c *memoryCache) Purge(ctx context.Context, dictionary string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, s := range c.solutions {
		if s.Dictionary == dictionary {
			delete(c.solutions, k)
		}
	}
	return nil
}
