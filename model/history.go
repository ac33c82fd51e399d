package model

const historySize = 5

// History keeps the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// UpdateHistory adds a grid state to history and maintains size
func (h *History) UpdateHistory(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())

	// Keep only the last few states to detect cycles
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// i.e. the board is a still life or an oscillator of period 3 or less.
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == currentHash {
			return true
		}
	}

	return false
}
