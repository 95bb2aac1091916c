package model

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotRectangular is returned when construction rows differ in length
	ErrNotRectangular = errors.New("matrix is not rectangular")
	// ErrInvalidDimensions is returned for negative grid dimensions
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// mooreOffsets lists neighbour offsets in the order links are wired
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a finite, non-wrapping Life board. It owns every Cell; cells are
// stored row-major so the cell at (x, y) lives at index y*width+x.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a wired grid of dead cells
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.wire()
	return g, nil
}

// FromMatrix builds a grid from a row-major matrix, matrix[y][x], where each
// inner slice is one row. Every row must have the same length. A matrix with
// no cells, whether nil or made only of empty rows, gives a 0x0 grid.
func FromMatrix(matrix [][]bool) (*Grid, error) {
	var width int
	if len(matrix) > 0 {
		width = len(matrix[0])
	}
	for y, row := range matrix {
		if len(row) != width {
			return nil, errors.Wrapf(ErrNotRectangular,
				"[FromMatrix] row %d has %d cells, want %d", y, len(row), width)
		}
	}

	height := len(matrix)
	if width == 0 {
		height = 0
	}
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for y, row := range matrix[:height] {
		for x, alive := range row {
			g.cells[y*width+x].alive = alive
		}
	}
	return g, nil
}

// wire links every cell to its in-bounds Moore neighbours. Runs once, from the constructor.
func (g *Grid) wire() {
	for y := range g.height {
		for x := range g.width {
			c := &g.cells[y*g.width+x]
			c.grid, c.x, c.y = g, x, y
			c.links = make([]int, 0, len(mooreOffsets))
			for _, off := range mooreOffsets {
				nx, ny := x+off[0], y+off[1]
				if g.inBounds(nx, ny) {
					c.links = append(c.links, ny*g.width+nx)
				}
			}
		}
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// CellAt returns the cell at (x, y). ok is false for any coordinate outside the grid.
func (g *Grid) CellAt(x, y int) (c *Cell, ok bool) {
	if !g.inBounds(x, y) {
		return nil, false
	}
	return &g.cells[y*g.width+x], true
}

// IsAliveAt returns the state of the cell at (x, y). ok is false outside the grid.
func (g *Grid) IsAliveAt(x, y int) (alive, ok bool) {
	c, ok := g.CellAt(x, y)
	if !ok {
		return false, false
	}
	return c.IsAlive(), true
}

// Set sets a cell to alive (true) or dead (false), reporting whether (x, y) was on the grid
func (g *Grid) Set(x, y int, alive bool) bool {
	c, ok := g.CellAt(x, y)
	if ok {
		c.SetAlive(alive)
	}
	return ok
}

// Advance moves the whole grid one generation forward.
//
// Every cell is staged before any cell is committed. Staging reads live
// neighbour state, so committing early would leak next-generation values into
// cells that have not been staged yet.
func (g *Grid) Advance() {
	for i := range g.cells {
		g.cells[i].StageNextState()
	}
	for i := range g.cells {
		g.cells[i].CommitNextState()
	}
}

// AdvanceParallel is Advance with each pass split into row bands across
// workers. The stage pass finishes on every band before the commit pass starts;
// if staging fails nothing is committed.
func (g *Grid) AdvanceParallel(workers int) error {
	if workers <= 1 || g.height < 2 {
		g.Advance()
		return nil
	}

	if err := g.forEachBand(workers, (*Cell).StageNextState); err != nil {
		return errors.Wrap(err, "[AdvanceParallel] stage pass failed")
	}
	if err := g.forEachBand(workers, (*Cell).CommitNextState); err != nil {
		return errors.Wrap(err, "[AdvanceParallel] commit pass failed")
	}
	return nil
}

// forEachBand applies fn to every cell, one errgroup task per row band, and
// waits for all bands. Each task writes only to cells in its own band.
func (g *Grid) forEachBand(workers int, fn func(*Cell)) error {
	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for idx := startRow * g.width; idx < endRow*g.width; idx++ {
				fn(&g.cells[idx])
			}
			return nil
		})
	}

	return eg.Wait()
}

// Step advances the grid n generations, stopping at the first failed generation
func (g *Grid) Step(n, workers int) error {
	for gen := range n {
		if err := g.AdvanceParallel(workers); err != nil {
			return errors.Wrapf(err, "[Step] generation %d", gen+1)
		}
	}
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.cells {
		if g.cells[i].alive {
			count++
		}
	}
	return
}

// Matrix returns a row-major copy of the current state, matrix[y][x]
func (g *Grid) Matrix() [][]bool {
	out := make([][]bool, g.height)
	for y := range g.height {
		out[y] = make([]bool, g.width)
		for x := range g.width {
			out[y][x] = g.cells[y*g.width+x].alive
		}
	}
	return out
}

// String renders the grid one row per line, 'O' alive and '.' dead
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x].alive {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Place copies a row-major pattern onto the grid with its top-left corner at
// (startX, startY). Parts falling outside the grid are clipped.
func (g *Grid) Place(pattern [][]bool, startX, startY int) {
	for y, row := range pattern {
		for x, alive := range row {
			g.Set(startX+x, startY+y, alive)
		}
	}
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i].alive = rng.Float64() < density
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	g.Place([][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}, startX, startY)
}

// AddOscillator adds a horizontal blinker at the specified position
func (g *Grid) AddOscillator(startX, startY int) {
	g.Place([][]bool{{true, true, true}}, startX, startY)
}
