// internal/solver/solver.go
//
// Exhaustive word search over a letter grid.
//
// Algorithm (depth-first backtracking from every cell):
//   - Append the cell's tile to the current path.
//   - If the candidate is a dictionary word, record it.
//   - If some word starts with the candidate and the cap allows a longer
//     word, mark the cell used and continue into its neighbours.
//
// The prefix test prunes every branch no word can complete.
//
// Notes:
//   - Used-cell markers live in a per-call bitset, never on the Grid, so
//     concurrent searches over one Grid do not interfere.
//   - Results are a set: a word reachable along several paths appears once.
//   - No returned word is longer than MaxWordLength (counted in letters, so a
//     "QU" tile counts for two).

package solver

import (
	"maps"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/mntnorv/wrdl/internal/grid"
)

// DefaultMaxWordLength caps the search depth unless configured otherwise.
const DefaultMaxWordLength = 8

// Lexicon is the dictionary view the search needs.
type Lexicon interface {
	Contains(word string) bool
	ContainsPrefix(prefix string) bool
}

// Finder runs grid searches. MaxWordLength must be set before FindWords is
// called to apply to that call; values below 1 mean DefaultMaxWordLength.
type Finder struct {
	MaxWordLength int
}

// New returns a Finder with the default word length cap.
func New() *Finder {
	return &Finder{MaxWordLength: DefaultMaxWordLength}
}

func (f *Finder) maxLen() int {
	if f == nil || f.MaxWordLength < 1 {
		return DefaultMaxWordLength
	}
	return f.MaxWordLength
}

// FindWords returns every word of d that can be traced on g.
func (f *Finder) FindWords(g *grid.Grid, d Lexicon) map[string]struct{} {
	s := newSearch(g, d, f.maxLen())
	for i := 0; i < g.Len(); i++ {
		s.visit(i, "")
	}
	log.Debug().Int("cells", g.Len()).Int("words", len(s.words)).Msg("grid search finished")
	return s.words
}

// WordCount returns the number of distinct words FindWords would return.
func (f *Finder) WordCount(g *grid.Grid, d Lexicon) int {
	return len(f.FindWords(g, d))
}

// Sorted returns the words of a result set in ascending order.
func Sorted(words map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(words))
}

// search is the state of one FindWords call.
type search struct {
	grid  *grid.Grid
	dict  Lexicon
	limit int
	used  bitset
	words map[string]struct{}
}

func newSearch(g *grid.Grid, d Lexicon, limit int) *search {
	return &search{
		grid:  g,
		dict:  d,
		limit: limit,
		used:  newBitset(g.Len()),
		words: make(map[string]struct{}),
	}
}

func (s *search) visit(cell int, path string) {
	if s.used.has(cell) {
		return
	}
	candidate := path + s.grid.Letter(cell)
	if len(candidate) > s.limit {
		return
	}
	if s.dict.Contains(candidate) {
		s.words[candidate] = struct{}{}
	}
	if len(candidate) == s.limit || !s.dict.ContainsPrefix(candidate) {
		return
	}

	s.used.set(cell)
	for _, n := range s.grid.Neighbors(cell) {
		s.visit(n, candidate)
	}
	s.used.clear(cell)
}

// bitset marks the cells on the current path.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

func (b bitset) has(i int) bool { return b[i/64]&(1<<(i%64)) != 0 }
func (b bitset) set(i int)      { b[i/64] |= 1 << (i % 64) }
func (b bitset) clear(i int)    { b[i/64] &^= 1 << (i % 64) }
