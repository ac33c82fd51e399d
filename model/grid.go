package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-board/rules"
)

// neighborOffsets are the Moore neighborhood deltas as (dx, dy)
var neighborOffsets = [8][2]int{
	{0, 1},
	{0, -1},
	{1, -1},
	{-1, 1},
	{1, 1},
	{-1, -1},
	{1, 0},
	{-1, 0},
}

// Grid is one snapshot of the board. cells is indexed [y][x].
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// newFrom returns a blank grid of the given size, from the pool when there is one
func newFrom(pool *GridPool, width, height int) *Grid {
	if pool != nil {
		return pool.Get(width, height)
	}
	return NewGrid(width, height)
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if g.contains(x, y) {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if !g.contains(x, y) {
		return false
	}
	return g.cells[y][x]
}

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CountNeighbors counts living cells in the Moore neighborhood of (x, y)
func (g *Grid) CountNeighbors(x, y int, topology Topology) (count int) {
	for _, off := range neighborOffsets {
		nx, ny, ok := topology.resolve(x+off[0], y+off[1], g.width, g.height)
		if ok && g.cells[ny][nx] {
			count++
		}
	}
	return
}

// NextGeneration computes the next generation into a fresh grid.
// g itself is never modified.
func (g *Grid) NextGeneration(topology Topology, pool *GridPool) *Grid {
	next := newFrom(pool, g.width, g.height)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := range g.width {
					next.cells[y][x] = rules.ApplyConwayRules(g.CountNeighbors(x, y, topology), g.cells[y][x])
				}
			}
			return nil
		})
	}

	// workers only write disjoint rows and never fail
	_ = eg.Wait()

	return next
}

// Clone returns a copy of the grid
func (g *Grid) Clone(pool *GridPool) *Grid {
	c := newFrom(pool, g.width, g.height)
	for y := range g.height {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Toggle returns a copy of the grid with the cell at (x, y) flipped
func (g *Grid) Toggle(x, y int, pool *GridPool) *Grid {
	c := g.Clone(pool)
	if c.contains(x, y) {
		c.cells[y][x] = !c.cells[y][x]
	}
	return c
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize makes each cell alive with probability density
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = rng.Float64() < density
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}

// AddOscillator adds a horizontal blinker starting at the specified position
func (g *Grid) AddOscillator(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX+2, startY, true)
}
