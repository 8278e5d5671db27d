// internal/grid/grid.go
//
// Letter grid with a precomputed adjacency graph.
//
// Cells are stored in row-major order. Each cell keeps its upper-cased tile
// ("A", "QU", ...) and the indices of up to 8 bordering cells. Cells on an
// edge do not wrap around to the opposite side.
//
// A Grid is immutable after New and holds no search state, so any number of
// searches may run over the same Grid at once.

package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDimensions is returned when the letters do not fill a columns×rows board.
var ErrDimensions = errors.New("grid: size of letters must be columns*rows")

// ErrLetter is returned when a cell has no characters.
var ErrLetter = errors.New("grid: empty tile")

// Grid is a columns×rows board of letter tiles.
type Grid struct {
	columns   int
	rows      int
	letters   []string
	neighbors [][]int
}

// Direction offsets as (row, column) deltas.
var directions = [8][2]int{
	{-1, 0},  // up
	{1, 0},   // down
	{0, -1},  // left
	{0, 1},   // right
	{-1, -1}, // up left
	{-1, 1},  // up right
	{1, -1},  // down left
	{1, 1},   // down right
}

// New builds a Grid from row-major letters. Every cell needs at least one
// character.
func New(letters []string, columns, rows int) (*Grid, error) {
	if columns <= 0 || rows <= 0 || len(letters) != columns*rows {
		return nil, fmt.Errorf("%w: %d letters for %dx%d", ErrDimensions, len(letters), columns, rows)
	}

	g := &Grid{
		columns:   columns,
		rows:      rows,
		letters:   make([]string, len(letters)),
		neighbors: make([][]int, len(letters)),
	}
	for i, l := range letters {
		if l == "" {
			return nil, fmt.Errorf("%w at cell %d", ErrLetter, i)
		}
		g.letters[i] = strings.ToUpper(l)
	}

	for i := range g.letters {
		row, col := i/columns, i%columns
		adj := make([]int, 0, len(directions))
		for _, d := range directions {
			r, c := row+d[0], col+d[1]
			// Clip at every edge instead of wrapping.
			if r < 0 || r >= rows || c < 0 || c >= columns {
				continue
			}
			adj = append(adj, r*columns+c)
		}
		g.neighbors[i] = adj
	}
	return g, nil
}

// Columns returns the board width.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the board height.
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.letters) }

// Letter returns the normalized tile at cell i.
func (g *Grid) Letter(i int) string { return g.letters[i] }

// Neighbors returns the cells bordering cell i. The slice is shared and
// must not be modified.
func (g *Grid) Neighbors(i int) []int { return g.neighbors[i] }

// Letters returns a copy of the normalized tiles in row-major order.
func (g *Grid) Letters() []string {
	out := make([]string, len(g.letters))
	copy(out, g.letters)
	return out
}

// Adjacent reports whether cells a and b border each other.
func (g *Grid) Adjacent(a, b int) bool {
	for _, n := range g.neighbors[a] {
		if n == b {
			return true
		}
	}
	return false
}
