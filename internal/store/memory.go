// internal/store/memory.go
//
// In-memory implementation of the game.Store interface.
// Game sessions are ephemeral: they exist while the process runs and are
// never written anywhere.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Holds at most `capacity` games; saving a new game beyond that evicts
//     the oldest one.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - ErrNotFound is returned for missing game IDs on Get().

package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/mntnorv/wrdl/internal/game"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("store: not found")

// Store defines the interface for live game sessions.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	// Returns ErrNotFound if the game is not known.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete forgets a game. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex          // guards games and order
	games    map[string]*game.Game // keyed by Game.ID
	order    []string              // IDs in insertion order, oldest first
	capacity int                   // <= 0 means unbounded
}

// NewMemoryStore constructs a new in-memory Store holding at most capacity
// games (unbounded when capacity <= 0).
func NewMemoryStore(capacity int) Store {
	return &memory{games: make(map[string]*game.Game), capacity: capacity}
}

// Save adds or updates the game in the map, evicting the oldest games when
// the store is full.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[g.ID]; !ok {
		m.order = append(m.order, g.ID)
	}
	m.games[g.ID] = g
	for m.capacity > 0 && len(m.games) > m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.games, oldest)
	}
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

// Delete removes a game by ID.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return nil
	}
	delete(m.games, id)
	m.order = slices.DeleteFunc(m.order, func(o string) bool { return o == id })
	return nil
}
