package rules

/*
Next applies Conway's Game of Life transition rules to a single cell and
returns its state in the following generation.

A live cell with fewer than two live neighbours dies (underpopulation), with
two or three lives on, and with more than three dies (overpopulation). A dead
cell with exactly three live neighbours becomes alive (reproduction). Any
other cell keeps its current state.
*/
func Next(alive bool, liveNeighbors uint8) bool {
	switch {
	case alive && liveNeighbors < 2:
		return false
	case alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return true
	case alive && liveNeighbors > 3:
		return false
	case !alive && liveNeighbors == 3:
		return true
	default:
		return alive
	}
}
