package rules

const (
	minSurvivors = 2
	maxSurvivors = 3
	birthCount   = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

  - fewer than 2 or more than 3 living neighbors: the cell dies (or stays dead)
  - a dead cell with exactly 3 living neighbors is born
  - anything else keeps its current state
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if neighbors < minSurvivors || neighbors > maxSurvivors {
		return false
	}
	if !alive && neighbors == birthCount {
		return true
	}
	return alive
}
