package model

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/stvsmth/conway-life/rules"
)

// Point identifies a cell by its row and column.
type Point struct {
	Row int
	Col int
}

/*
Grid is the game board. It owns two same-shape buffers: cells holds the
current generation, next is scratch that Advance fills and swaps in, so a
generation transition is all-or-nothing. Dimensions are fixed at
construction and the grid is not safe for concurrent use; the game loop
owns it exclusively.
*/
type Grid struct {
	rows, cols int
	cells      [][]bool
	next       [][]bool
	generation int
	changed    bool
}

// New creates a grid of the given dimensions with the seed points alive.
// Seed points outside [0,rows)x[0,cols) are rejected rather than clamped.
func New(rows, cols int, seed []Point) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("[New] grid dimensions must be positive, got %dx%d", rows, cols)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: makeCells(rows, cols),
		next:  makeCells(rows, cols),
	}
	for _, p := range seed {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return nil, errors.Errorf("[New] seed position (%d,%d) outside %dx%d grid", p.Row, p.Col, rows, cols)
		}
		g.cells[p.Row][p.Col] = true
	}
	return g, nil
}

// NewRandom creates a grid where each cell starts alive with probability
// density.
func NewRandom(rows, cols int, density float64, rng *rand.Rand) (*Grid, error) {
	if density < 0 || density > 1 {
		return nil, errors.Errorf("[NewRandom] density must be in [0,1], got %v", density)
	}
	g, err := New(rows, cols, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRandom] invalid dimensions")
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = rng.Float64() < density
		}
	}
	return g, nil
}

func makeCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// IsAlive returns the state of a cell. Positions outside the grid are the
// hard border: always dead, never an error.
func (g *Grid) IsAlive(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.cells[row][col]
}

// LiveNeighbors counts the live cells in the Moore neighborhood of
// (row, col). The window is clamped to the grid, so border cells only
// ever examine in-bounds neighbors and there is no wraparound.
func (g *Grid) LiveNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// Advance computes the next generation into the scratch buffer, reading
// only the pre-advance board, then swaps the buffers and increments the
// generation counter. It never fails.
func (g *Grid) Advance() {
	changed := false
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			alive := rules.NextState(g.cells[r][c], g.LiveNeighbors(r, c))
			g.next[r][c] = alive
			if alive != g.cells[r][c] {
				changed = true
			}
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
	g.changed = changed
}

// Generation returns how many times Advance has been called.
func (g *Grid) Generation() int { return g.generation }

// Stable reports whether the most recent Advance changed no cell. A
// stable board will never change again.
func (g *Grid) Stable() bool { return g.generation > 0 && !g.changed }

// Snapshot returns a row-major copy of the current cell states. Mutating
// the returned slices never affects the grid.
func (g *Grid) Snapshot() [][]bool {
	snap := make([][]bool, g.rows)
	for r := range snap {
		snap[r] = make([]bool, g.cols)
		copy(snap[r], g.cells[r])
	}
	return snap
}

// Population returns the number of live cells.
func (g *Grid) Population() (count int) {
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}
