package pitremoval_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/relief/dem"
	"github.com/katalvlaran/relief/pitremoval"
)

// BenchmarkRemovePits measures the full resolver over a 100×100 seeded
// random surface. RemovePits clones its input, so the same grid feeds
// every iteration.
func BenchmarkRemovePits(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	values := make([][]float64, 100)
	for r := range values {
		values[r] = make([]float64, 100)
		for c := range values[r] {
			values[r][c] = 100 * rng.Float64()
		}
	}
	g, err := dem.New(values, -9999)
	if err != nil {
		b.Fatalf("build grid: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = pitremoval.RemovePits(g, pitremoval.WithStepSize(1.0)); err != nil {
			b.Fatalf("remove pits: %v", err)
		}
	}
}
