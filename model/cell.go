package model

import "github.com/sheikhrachel/go-life/rules"

// Cell is a single position on a Grid.
//
// Neighbour links are indices into the owning grid's cell arena, fixed when the
// grid is built. A cell never owns its neighbours.
type Cell struct {
	grid  *Grid
	x, y  int
	alive bool
	links []int

	staged    bool
	hasStaged bool
}

// X returns the cell's column
func (c *Cell) X() int { return c.x }

// Y returns the cell's row
func (c *Cell) Y() int { return c.y }

// IsAlive returns the current generation state
func (c *Cell) IsAlive() bool {
	return c.alive
}

// SetAlive overwrites the current generation state
func (c *Cell) SetAlive(alive bool) {
	c.alive = alive
}

// Neighbours returns the wired neighbours in Moore order.
// The returned slice is a copy; changing it does not rewire the cell.
func (c *Cell) Neighbours() []*Cell {
	out := make([]*Cell, len(c.links))
	for i, idx := range c.links {
		out[i] = &c.grid.cells[idx]
	}
	return out
}

// LivingNeighbourCount counts neighbours that are alive right now
func (c *Cell) LivingNeighbourCount() (count int) {
	for _, idx := range c.links {
		if c.grid.cells[idx].alive {
			count++
		}
	}
	return
}

// ComputeNextState reports the cell's state in the next generation without mutating it
func (c *Cell) ComputeNextState() bool {
	return rules.NextState(c.alive, c.LivingNeighbourCount())
}

// StageNextState records the next state without changing IsAlive.
func (c *Cell) StageNextState() {
	c.staged = c.ComputeNextState()
	c.hasStaged = true
}

// CommitNextState makes the staged state current and clears it. A cell that was
// never staged computes its next state on the spot.
func (c *Cell) CommitNextState() {
	next := c.staged
	if !c.hasStaged {
		next = c.ComputeNextState()
	}
	c.alive = next
	c.staged, c.hasStaged = false, false
}
