package rules

import "testing"

func TestNextCoversEveryNeighborCount(t *testing.T) {
	for neighbors := uint8(0); neighbors <= 8; neighbors++ {
		wantLive := neighbors == 2 || neighbors == 3
		if got := Next(true, neighbors); got != wantLive {
			t.Errorf("live cell with %d neighbors: next=%v, expected %v", neighbors, got, wantLive)
		}

		wantDead := neighbors == 3
		if got := Next(false, neighbors); got != wantDead {
			t.Errorf("dead cell with %d neighbors: next=%v, expected %v", neighbors, got, wantDead)
		}
	}
}
