package universe

import "toruslife/rules"

// neighborDeltas returns the row and column offsets covering the Moore
// neighborhood. Adding height-1 (or width-1) is the modular equivalent of
// subtracting one, which keeps the arithmetic in unsigned space.
func (u *Universe) neighborDeltas() ([3]uint, [3]uint) {
	return [3]uint{u.height - 1, 0, 1}, [3]uint{u.width - 1, 0, 1}
}

// LiveNeighborCount sums the live cells of the eight toroidally wrapped
// neighbors of (row, col), the cell itself excluded.
//
// Requires non-zero dimensions; a zero width or height panics on the modulo.
func (u *Universe) LiveNeighborCount(row, col uint) uint8 {
	var count uint8
	rowDeltas, colDeltas := u.neighborDeltas()
	for _, deltaRow := range rowDeltas {
		for _, deltaCol := range colDeltas {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			neighborRow := (row + deltaRow) % u.height
			neighborCol := (col + deltaCol) % u.width
			if u.Cell(neighborRow, neighborCol) {
				count++
			}
		}
	}
	return count
}

// Tick advances the whole board by exactly one generation.
//
// Every next state is computed from the pre-tick buffer and written into a
// clone, which replaces the live buffer only once the scan is complete.
// Writing in place would corrupt the neighbor counts of cells visited later
// in the same scan. The retired buffer is unreferenced after the swap and
// left to the garbage collector.
func (u *Universe) Tick() {
	next := u.cells.Clone()
	for row := uint(0); row < u.height; row++ {
		for col := uint(0); col < u.width; col++ {
			idx := u.Index(row, col)
			next.SetTo(idx, rules.Next(u.cells.Test(idx), u.LiveNeighborCount(row, col)))
		}
	}
	u.cells = next
}
