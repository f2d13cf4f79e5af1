package mosaic_test

import (
	"fmt"

	"github.com/katalvlaran/tessella/arrange"
	"github.com/katalvlaran/tessella/internal/example"
	"github.com/katalvlaran/tessella/mosaic"
)

// ExampleImage_FindMonsters runs the whole pipeline on the worked puzzle:
// arrange the 9 tiles, assemble their interiors into a 24×24 image, then
// hunt the sea monster through all 8 orientations. Exactly one orientation
// contains monsters; the cells they cover are subtracted from the
// roughness.
func ExampleImage_FindMonsters() {
	a, err := arrange.Solve(example.Width, example.Height, example.Tiles())
	if err != nil {
		fmt.Println("solve:", err)

		return
	}
	img, err := mosaic.Assemble(a)
	if err != nil {
		fmt.Println("assemble:", err)

		return
	}

	monsters, roughness := img.FindMonsters(mosaic.SeaMonster())
	fmt.Println("monsters:", monsters)
	fmt.Println("roughness:", roughness)

	// Output:
	// monsters: 2
	// roughness: 273
}
