package arrange_test

import (
	"testing"

	"github.com/katalvlaran/tessella/arrange"
	"github.com/katalvlaran/tessella/internal/example"
)

// BenchmarkNewIndex measures the one-time compatibility precomputation on
// the worked example (T=9: 9×8×8²×4 edge comparisons).
func BenchmarkNewIndex(b *testing.B) {
	tiles := example.Tiles()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arrange.NewIndex(tiles)
	}
}

// BenchmarkSolve measures the full anchor sweep plus backjumping search on
// the worked example, index construction included.
func BenchmarkSolve(b *testing.B) {
	tiles := example.Tiles()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arrange.Solve(example.Width, example.Height, tiles); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
