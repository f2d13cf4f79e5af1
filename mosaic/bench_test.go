package mosaic_test

import (
	"testing"

	"github.com/katalvlaran/tessella/arrange"
	"github.com/katalvlaran/tessella/internal/example"
	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/orient"
)

// BenchmarkFindMonsters measures the 8-orientation pattern sweep over the
// assembled worked-example image. Setup (solve + assemble) is excluded;
// each iteration scans a fresh copy so marking never short-circuits it.
func BenchmarkFindMonsters(b *testing.B) {
	a, err := arrange.Solve(example.Width, example.Height, example.Tiles())
	if err != nil {
		b.Fatalf("setup Solve failed: %v", err)
	}
	base, err := mosaic.Assemble(a)
	if err != nil {
		b.Fatalf("setup Assemble failed: %v", err)
	}
	pat := mosaic.SeaMonster()

	rows := make([]string, base.Height())
	for y := range rows {
		row := make([]byte, base.Width())
		for x := range row {
			row[x] = base.At(orient.Pos{X: x, Y: y})
		}
		rows[y] = string(row)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		img, newErr := mosaic.New(rows)
		if newErr != nil {
			b.Fatalf("New failed: %v", newErr)
		}
		_, _ = img.FindMonsters(pat)
	}
}
