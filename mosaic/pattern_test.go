package mosaic_test

import (
	"testing"

	"github.com/katalvlaran/tessella/arrange"
	"github.com/katalvlaran/tessella/internal/example"
	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/orient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustImage builds an image from rows, failing the test on error.
func mustImage(t *testing.T, rows ...string) *mosaic.Image {
	t.Helper()
	m, err := mosaic.New(rows)
	require.NoError(t, err)

	return m
}

// TestSeaMonster verifies the built-in pattern's shape.
func TestSeaMonster(t *testing.T) {
	pat := mosaic.SeaMonster()
	assert.Equal(t, 20, pat.Width())
	assert.Equal(t, 3, pat.Height())
	assert.Equal(t, 15, pat.Count(mosaic.Filled))
}

// TestMatchAt covers required cells, don't-care cells and bounds.
func TestMatchAt(t *testing.T) {
	img := mustImage(t,
		"##..",
		".##.",
	)
	pat := mustImage(t, "## ")

	assert.True(t, img.MatchAt(orient.Pos{}, pat), "don't-care cell may cover anything")
	assert.True(t, img.MatchAt(orient.Pos{X: 1, Y: 1}, pat))
	assert.False(t, img.MatchAt(orient.Pos{X: 1, Y: 0}, pat), "second required cell empty")
	assert.False(t, img.MatchAt(orient.Pos{X: 2, Y: 1}, pat), "runs past the right bound")
	assert.False(t, img.MatchAt(orient.Pos{X: -1, Y: 0}, pat))
}

// TestFindPattern_OverlapIndependent proves matching is two-phase: both
// overlapping occurrences are counted and marked even though marking either
// one first would destroy the other's cells.
func TestFindPattern_OverlapIndependent(t *testing.T) {
	img := mustImage(t, "###")
	pat := mustImage(t, "##")

	assert.Equal(t, 2, img.FindPattern(pat))
	assert.Equal(t, 0, img.Count(mosaic.Filled), "every cell belongs to a match")
	assert.Equal(t, 3, img.Count(mosaic.Marked), "re-marking the shared cell is idempotent")
}

// TestFindPattern_InclusiveBounds checks the last valid top-left offset is
// tried in both axes.
func TestFindPattern_InclusiveBounds(t *testing.T) {
	img := mustImage(t,
		"....",
		"..##",
	)
	pat := mustImage(t, "##")

	assert.Equal(t, 1, img.FindPattern(pat), "match flush against the corner")
	assert.Equal(t, mosaic.Marked, img.At(orient.Pos{X: 3, Y: 1}))
}

// TestFindPattern_PatternLargerThanImage yields no offsets and no matches.
func TestFindPattern_PatternLargerThanImage(t *testing.T) {
	img := mustImage(t, "##")
	pat := mustImage(t, "###")

	assert.Equal(t, 0, img.FindPattern(pat))
	assert.Equal(t, 2, img.Count(mosaic.Filled), "nothing may be marked")
}

// TestFindMonsters_WorkedExample runs the full pipeline: solve the 3×3
// puzzle, assemble the 24×24 image, hunt the sea monster through the 8
// orientations, and count the remaining roughness.
func TestFindMonsters_WorkedExample(t *testing.T) {
	a, err := arrange.Solve(example.Width, example.Height, example.Tiles())
	require.NoError(t, err)
	img, err := mosaic.Assemble(a)
	require.NoError(t, err)

	matches, roughness := img.FindMonsters(mosaic.SeaMonster())
	assert.Equal(t, example.Monsters, matches)
	assert.Equal(t, example.Roughness, roughness)

	// A second sweep finds nothing new and the roughness is unchanged:
	// matched cells are no longer Filled, unmatched ones still are.
	matches, roughness = img.FindMonsters(mosaic.SeaMonster())
	assert.Zero(t, matches)
	assert.Equal(t, example.Roughness, roughness)
}
