// internal/game/types.go
//
// Core type definitions for a word-search game session.
// Defines:
//   - Game: a board, every word findable on it, and the words guessed so far.
//   - GuessResult: outcome of one guess.

package game

import "sync"

// Game holds the state of a single board session.
//
// Words is sorted; the guessed bitmask indexes into that order, so bit i of
// the mask stands for Words[i].
type Game struct {
	ID      string   // Unique game identifier (random hex string).
	Columns int      // Board width.
	Rows    int      // Board height.
	Letters []string // Normalized tiles in row-major order.
	Words   []string // Every word on the board, sorted ascending.

	mu      sync.Mutex
	guessed []byte   // packed bitmask, len(Words)/8 + 1 bytes
	found   []string // guessed words in guess order
}

// GuessResult describes what a guess did.
type GuessResult struct {
	Word           string `json:"word"`           // Normalized guess.
	Valid          bool   `json:"valid"`          // Word is on the board.
	AlreadyGuessed bool   `json:"alreadyGuessed"` // Word had been guessed before.
	Guessed        int    `json:"guessed"`        // Guessed words after this guess.
	WordCount      int    `json:"wordCount"`      // Words on the board.
	Complete       bool   `json:"complete"`       // Every word has been guessed.
}
