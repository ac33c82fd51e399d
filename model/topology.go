package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Topology decides how neighbor coordinates outside the grid are treated
type Topology int

const (
	// Clamped drops neighbors that fall outside the grid
	Clamped Topology = iota
	// Toroidal wraps neighbors around to the opposite edge
	Toroidal
)

const (
	clampedName  = "clamped"
	toroidalName = "toroidal"
)

// ParseTopology converts a config name into a Topology
func ParseTopology(name string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case clampedName:
		return Clamped, nil
	case toroidalName:
		return Toroidal, nil
	}
	return Clamped, errors.Errorf("[ParseTopology] unknown topology: %q", name)
}

func (t Topology) String() string {
	switch t {
	case Clamped:
		return clampedName
	case Toroidal:
		return toroidalName
	}
	return "unknown"
}

// resolve maps a possibly out-of-range coordinate onto the grid.
// ok is false when the coordinate has no cell under this topology.
func (t Topology) resolve(x, y, width, height int) (rx, ry int, ok bool) {
	if t == Toroidal {
		return (x%width + width) % width, (y%height + height) % height, true
	}
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, false
	}
	return x, y, true
}
