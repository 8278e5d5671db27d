// internal/grid/letters.go
//
// Board string codec and random board generation.
//
// A board string packs the tiles of a board without separators: every tile
// starts with an upper-case letter and any following lower-case letters
// belong to the same tile, so "AQuBC" is ["A", "Qu", "B", "C"].
//
// Boards are rolled from the classic 16 Boggle dice. Larger boards reuse
// dice at random once all 16 have been placed.

package grid

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
)

// ErrBoard is returned for board strings that cannot be split into tiles.
var ErrBoard = errors.New("grid: malformed board string")

// ParseBoard splits a board string into tiles. Whitespace is ignored.
// A string whose first letter is not upper-case has no tile boundary to
// start from and is rejected with ErrBoard.
func ParseBoard(s string) ([]string, error) {
	var tiles []string
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsUpper(r):
			tiles = append(tiles, string(r))
		case len(tiles) == 0:
			return nil, fmt.Errorf("%w: %q does not start with an upper-case letter", ErrBoard, s)
		default:
			tiles[len(tiles)-1] += string(r)
		}
	}
	return tiles, nil
}

// FormatBoard packs tiles into a board string.
func FormatBoard(tiles []string) string {
	var b strings.Builder
	for _, t := range tiles {
		if t == "" {
			continue
		}
		b.WriteString(strings.ToUpper(t[:1]))
		b.WriteString(strings.ToLower(t[1:]))
	}
	return b.String()
}

// dice lists the faces of each die; 'Q' stands for the "QU" tile.
var dice = [16]string{
	"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS",
	"AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
	"DISTTY", "EEGHNW", "EEINSU", "EHRTVW",
	"EIOSST", "ELRTTY", "HIMNQU", "HLNNRZ",
}

// Generate rolls a size×size board using rng.
// Passing a seeded generator makes the board reproducible.
func Generate(rng *rand.Rand, size int) []string {
	n := size * size
	if n <= 0 {
		return nil
	}

	order := rng.Perm(len(dice))
	tiles := make([]string, n)
	for i := range tiles {
		var die string
		if i < len(order) {
			die = dice[order[i]]
		} else {
			die = dice[rng.IntN(len(dice))]
		}
		face := die[rng.IntN(len(die))]
		if face == 'Q' {
			tiles[i] = "QU"
		} else {
			tiles[i] = string(face)
		}
	}
	return tiles
}

// Random rolls a size×size board from an unseeded generator.
func Random(size int) []string {
	return Generate(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), size)
}
