package game

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

// Status summarises how the board is evolving
type Status string

const (
	StatusActive  Status = "Active"
	StatusStable  Status = "Stable"
	StatusExtinct Status = "Extinct"
)

// Board owns all mutable application state: the displayed grid snapshot,
// the run state and the tick accumulator. It is not safe for concurrent use.
type Board struct {
	grid     *model.Grid
	pool     *model.GridPool
	topology model.Topology
	density  float64
	interval time.Duration
	rng      *rand.Rand

	running    bool
	generation int
	pending    time.Duration
	lastStep   time.Time
	history    model.History
	stats      *utils.Stats
}

// NewBoard creates a Stopped board with a random grid
func NewBoard(config utils.Config, rng *rand.Rand) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	topology, err := config.GetTopology()
	if err != nil {
		return nil, err
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	b := &Board{
		grid:     model.NewGrid(config.Width, config.Height),
		pool:     pool,
		topology: topology,
		density:  config.RandomDensity,
		interval: config.TickInterval,
		rng:      rng,
		stats:    utils.NewStats(),
	}
	b.grid.Randomize(b.density, b.rng)
	return b, nil
}

// Grid returns the current snapshot. It must be treated as read-only.
func (b *Board) Grid() *model.Grid {
	return b.grid
}

func (b *Board) Topology() model.Topology {
	return b.topology
}

func (b *Board) Running() bool {
	return b.running
}

func (b *Board) Generation() int {
	return b.generation
}

func (b *Board) Stats() *utils.Stats {
	return b.stats
}

// replace swaps in a new snapshot and recycles the old one
func (b *Board) replace(next *model.Grid) {
	prev := b.grid
	b.grid = next
	model.GridToPool(prev, b.pool)
}

// Start switches to Running
func (b *Board) Start() {
	b.running = true
}

// Stop switches to Stopped and drops any partially elapsed tick
func (b *Board) Stop() {
	b.running = false
	b.pending = 0
}

// ToggleRunning flips between Running and Stopped
func (b *Board) ToggleRunning() {
	if b.running {
		b.Stop()
	} else {
		b.Start()
	}
}

// Step advances one generation regardless of run state
func (b *Board) Step() {
	b.history.UpdateHistory(b.grid)
	b.replace(b.grid.NextGeneration(b.topology, b.pool))
	b.generation++

	var sinceLast time.Duration
	now := time.Now()
	if !b.lastStep.IsZero() {
		sinceLast = now.Sub(b.lastStep)
	}
	b.lastStep = now
	b.stats.Update(b.generation, b.grid.CountLivingCells(), sinceLast)
}

// Advance feeds elapsed wall time into the timer. While Running, a step
// fires once a full tick interval has accumulated; it returns how many fired.
// Missed ticks are not replayed: at most one step fires per call.
func (b *Board) Advance(elapsed time.Duration) (steps int) {
	if !b.running {
		return 0
	}

	b.pending = min(b.pending+elapsed, b.interval)
	for b.pending >= b.interval {
		b.pending -= b.interval
		b.Step()
		steps++
	}
	return
}

// ToggleCell flips the cell at (x, y)
func (b *Board) ToggleCell(x, y int) {
	b.replace(b.grid.Toggle(x, y, b.pool))
	b.history.Reset()
}

// PlaceGlider stamps a glider with its top-left corner at (x, y)
func (b *Board) PlaceGlider(x, y int) {
	next := b.grid.Clone(b.pool)
	next.AddGlider(x, y)
	b.replace(next)
	b.history.Reset()
}

// PlaceBlinker stamps a horizontal blinker starting at (x, y)
func (b *Board) PlaceBlinker(x, y int) {
	next := b.grid.Clone(b.pool)
	next.AddOscillator(x, y)
	b.replace(next)
	b.history.Reset()
}

// Clear replaces the grid with an all-dead one of the same size
func (b *Board) Clear() {
	next := b.grid.Clone(b.pool)
	next.Clear()
	b.replace(next)
	b.restart()
}

// Randomize replaces the grid with a fresh random one
func (b *Board) Randomize() {
	next := b.grid.Clone(b.pool)
	next.Randomize(b.density, b.rng)
	b.replace(next)
	b.restart()
}

// restart begins a new run: generation count, history and stats start over
func (b *Board) restart() {
	b.generation = 0
	b.lastStep = time.Time{}
	b.history.Reset()
	b.stats = utils.NewStats()
}

// Status reports whether the current grid is extinct, repeating or still evolving
func (b *Board) Status() Status {
	switch {
	case b.grid.CountLivingCells() == 0:
		return StatusExtinct
	case b.history.IsStagnant(b.grid):
		return StatusStable
	}
	return StatusActive
}
