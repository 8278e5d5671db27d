// internal/game/engine.go
//
// Game engine for a single board session.
// Responsibilities:
//   - Create games from a grid and the word list solved for it, kept sorted.
//   - Check membership (IsWordInGrid) with a binary search over that list.
//   - Track guessed words in a packed bitmask (one bit per sorted word) that
//     callers can export and restore.
//
// Notes:
//   - Games live in memory only; nothing here persists progress.
//   - A Game guards its guess state with its own mutex, so concurrent
//     requests against one session are safe.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mntnorv/wrdl/internal/grid"
)

// ErrGuessedMask is returned when a restored bitmask does not fit the board.
var ErrGuessedMask = errors.New("game: guessed mask does not match word list")

// FromWords constructs a game from an already computed word list.
// The list is copied and sorted.
func FromWords(g *grid.Grid, words []string) *Game {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	return &Game{
		ID:      randomID(),
		Columns: g.Columns(),
		Rows:    g.Rows(),
		Letters: g.Letters(),
		Words:   sorted,
		guessed: make([]byte, maskLen(len(sorted))),
	}
}

// Board returns the board string of the game's tiles.
func (g *Game) Board() string {
	return grid.FormatBoard(g.Letters)
}

// WordCount returns the number of words on the board.
func (g *Game) WordCount() int {
	return len(g.Words)
}

// IsWordInGrid reports whether word can be found on the board.
func (g *Game) IsWordInGrid(word string) bool {
	_, ok := g.index(normalize(word))
	return ok
}

// AddGuessedWord records a guess.
//
// Words not on the board are reported as invalid; they are not an error.
func (g *Game) AddGuessedWord(word string) GuessResult {
	word = normalize(word)
	g.mu.Lock()
	defer g.mu.Unlock()

	res := GuessResult{Word: word, WordCount: len(g.Words)}
	if i, ok := g.index(word); ok {
		res.Valid = true
		if g.bit(i) {
			res.AlreadyGuessed = true
		} else {
			g.guessed[i/8] |= 1 << (i % 8)
			g.found = append(g.found, word)
		}
	}
	res.Guessed = len(g.found)
	res.Complete = res.Guessed == len(g.Words)
	return res
}

// IsGuessed reports whether word has been guessed.
func (g *Game) IsGuessed(word string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.index(normalize(word))
	return ok && g.bit(i)
}

// GuessedWords returns the guessed words in guess order.
func (g *Game) GuessedWords() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.found)
}

// GuessedMask returns a copy of the packed guessed bitmask.
func (g *Game) GuessedMask() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.guessed)
}

// RestoreGuessed replaces the guess state with a previously exported mask.
// Restored words are listed in sorted order, since the mask carries no
// guess order. An all-zero single byte is treated as "nothing guessed yet".
func (g *Game) RestoreGuessed(mask []byte) error {
	want := maskLen(len(g.Words))
	if len(mask) == 1 && mask[0] == 0 {
		mask = make([]byte, want)
	}
	if len(mask) != want {
		return fmt.Errorf("%w: %d bytes for %d words", ErrGuessedMask, len(mask), len(g.Words))
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.guessed = slices.Clone(mask)
	g.found = g.found[:0]
	for i, w := range g.Words {
		if g.bit(i) {
			g.found = append(g.found, w)
		}
	}
	return nil
}

func (g *Game) index(word string) (int, bool) {
	return slices.BinarySearch(g.Words, word)
}

func (g *Game) bit(i int) bool {
	return g.guessed[i/8]&(1<<(i%8)) != 0
}

func maskLen(words int) int {
	return words/8 + 1
}

// normalize matches the dictionary's upper-case form.
func normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
