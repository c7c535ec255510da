package universe

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Universe is a toroidal Game of Life board. Cells are stored as a dense
// bit set in row-major order, so the board is a single width*height bit
// sequence rather than a matrix, and the last row/column wraps around to
// the first.
type Universe struct {
	width  uint
	height uint
	cells  *bitset.BitSet
}

// Coord addresses a single cell by row and column.
type Coord struct {
	Row, Col uint
}

// Width returns the number of columns.
func (u *Universe) Width() uint {
	return u.width
}

// Height returns the number of rows.
func (u *Universe) Height() uint {
	return u.height
}

// SetWidth resizes the board to the new width.
//
// Every cell is reset to the dead state, not just the added ones; callers
// must re-seed afterwards.
func (u *Universe) SetWidth(width uint) {
	u.width = width
	u.cells = bitset.New(width * u.height)
}

// SetHeight resizes the board to the new height.
//
// Every cell is reset to the dead state, not just the added ones; callers
// must re-seed afterwards.
func (u *Universe) SetHeight(height uint) {
	u.height = height
	u.cells = bitset.New(u.width * height)
}

// Index returns the flattened position of (row, col). Coordinates must
// already be wrapped; Index applies no modulo of its own.
func (u *Universe) Index(row, col uint) uint {
	return row*u.width + col
}

// Cell reports whether the cell at (row, col) is alive. Wrapping is the
// caller's responsibility.
func (u *Universe) Cell(row, col uint) bool {
	return u.cells.Test(u.Index(row, col))
}

// Cells exposes the packed cell words: bit i holds the state of flattened
// cell i. The slice aliases the live buffer and must be treated as
// read-only; it is invalidated by the next Tick or resize.
func (u *Universe) Cells() []uint64 {
	return u.cells.Bytes()
}

// Population returns the number of live cells.
func (u *Universe) Population() uint {
	return u.cells.Count()
}

// SetAliveCells marks every listed cell alive, leaving all others untouched.
//
// Unlike neighbor counting, no wrapping is applied here: a coordinate at or
// beyond the board dimensions is a caller error and panics. Letting the bit
// set grow on a stray index would silently break the width*height length
// invariant.
func (u *Universe) SetAliveCells(cells []Coord) {
	for _, c := range cells {
		if c.Row >= u.height || c.Col >= u.width {
			panic(fmt.Sprintf("universe: cell (%d, %d) outside %dx%d board", c.Row, c.Col, u.height, u.width))
		}
		u.cells.Set(u.Index(c.Row, c.Col))
	}
}
