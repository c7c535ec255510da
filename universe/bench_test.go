package universe

import (
	"fmt"
	"testing"
)

func Benchmark_Tick(b *testing.B) {
	sizes := []struct {
		width, height uint
	}{
		{64, 64},
		{128, 128},
		{256, 256},
	}

	for _, s := range sizes {
		b.Run(fmt.Sprintf("%dx%d", s.width, s.height), func(b *testing.B) {
			// deterministic scripted source so runs are comparable
			n := 0
			u := New(s.width, s.height, func() bool {
				n++
				return n%2 == 0 || n%7 == 0
			})
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Tick()
			}
		})
	}
}
