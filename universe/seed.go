package universe

import (
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// RandSource supplies the alive/dead coin flips drawn by New. Randomness is
// an injected capability: production callers plug in any generator, tests
// supply a scripted one.
type RandSource func() bool

// CoinFlip is the default RandSource, a fair coin on math/rand.
func CoinFlip() bool {
	return rand.Intn(2) == 1
}

// gliderCells is the 3x3 neighborhood written by SeedGliderAt, row-major.
var gliderCells = [9]bool{
	false, true, true,
	true, false, true,
	false, false, true,
}

// Empty creates a width by height universe with every cell dead.
func Empty(width, height uint) *Universe {
	return &Universe{
		width:  width,
		height: height,
		cells:  bitset.New(width * height),
	}
}

// New creates a width by height universe with each cell independently alive
// with probability one half, drawn from src. A nil src falls back to
// CoinFlip.
func New(width, height uint, src RandSource) *Universe {
	if src == nil {
		src = CoinFlip
	}
	u := Empty(width, height)
	for i := uint(0); i < width*height; i++ {
		u.cells.SetTo(i, src())
	}
	return u
}

// DeterministicPattern creates the fixed 64x64 demo board: cell i is alive
// when i%2 == 0 or i%7 == 0. Useful wherever a busy, reproducible board is
// wanted without randomness.
func DeterministicPattern() *Universe {
	u := Empty(64, 64)
	for i := uint(0); i < 64*64; i++ {
		u.cells.SetTo(i, i%2 == 0 || i%7 == 0)
	}
	return u
}

// WithSeededGlider creates an empty width by height universe with a single
// glider stamped around the board center.
func WithSeededGlider(width, height uint) *Universe {
	u := Empty(width, height)
	u.SeedGliderAt(width/2, height/2)
	return u
}

// SeedGliderAt overwrites the wrapped 3x3 neighborhood centered on
// (row, col) with a glider. Every cell of the neighborhood is written, dead
// cells included; this is a stamp, not an additive merge.
func (u *Universe) SeedGliderAt(row, col uint) {
	i := 0
	rowDeltas, colDeltas := u.neighborDeltas()
	for _, deltaRow := range rowDeltas {
		for _, deltaCol := range colDeltas {
			neighborRow := (row + deltaRow) % u.height
			neighborCol := (col + deltaCol) % u.width
			u.cells.SetTo(u.Index(neighborRow, neighborCol), gliderCells[i])
			i++
		}
	}
}
