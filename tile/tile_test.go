package tile_test

import (
	"testing"

	"github.com/katalvlaran/tessella/orient"
	"github.com/katalvlaran/tessella/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tile2311Rows is the raw grid of the worked example's first tile.
var tile2311Rows = []string{
	"..##.#..#.",
	"##..#.....",
	"#...##..#.",
	"####.#...#",
	"##.##.###.",
	"##...#.###",
	".#.#.#..##",
	"..#....#..",
	"###...#.#.",
	"..###..###",
}

// TestReversed_Involution checks p.Reversed().Reversed() == p over the whole
// representable 10-bit domain.
func TestReversed_Involution(t *testing.T) {
	for i := 0; i < 1<<tile.EdgeBits; i++ {
		p := tile.EdgePattern(i)
		assert.Equal(t, p, p.Reversed().Reversed(), "pattern %#03x", i)
	}
}

// TestReversed_Values spot-checks handful of known reversals.
func TestReversed_Values(t *testing.T) {
	cases := []struct{ in, want tile.EdgePattern }{
		{0x000, 0x000},
		{0x001, 0x200},
		{0x200, 0x001},
		{0x2F9, 0x27D},
		{0x077, 0x3B8},
		{0x16D, 0x2DA},
		{0x325, 0x293},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Reversed(), "Reversed(%#03x)", tc.in)
	}
}

// TestEdgePattern_String verifies the '#'/'.' rendering, MSB first.
func TestEdgePattern_String(t *testing.T) {
	assert.Equal(t, "..........", tile.EdgePattern(0).String())
	assert.Equal(t, ".........#", tile.EdgePattern(1).String())
	assert.Equal(t, "..##.#..#.", tile.EdgePattern(0x0D2).String())
}

// TestNew_DecodesEdgesAndInterior parses the worked example's tile 2311 and
// checks the four canonical edges and the trimmed interior.
func TestNew_DecodesEdgesAndInterior(t *testing.T) {
	tl, err := tile.New(2311, tile2311Rows)
	require.NoError(t, err)

	assert.Equal(t, tile.ID(2311), tl.ID)
	assert.Equal(t, tile.EdgePattern(0x0D2), tl.Top)
	assert.Equal(t, tile.EdgePattern(0x0E7), tl.Bottom)
	assert.Equal(t, tile.EdgePattern(0x1F2), tl.Left)
	assert.Equal(t, tile.EdgePattern(0x059), tl.Right)

	in := tl.Interior()
	require.Len(t, in, tile.InteriorSize)
	assert.Equal(t, "#..#....", string(in[0]), "first interior row of 2311")
	assert.Equal(t, "##...#.#", string(in[tile.InteriorSize-1]), "last interior row of 2311")

	// The copy must be the caller's to scribble on.
	in[0][0] = 'X'
	assert.Equal(t, "#..#....", string(tl.Interior()[0]), "Interior must deep-copy")
}

// TestNew_Errors exercises every construction failure.
func TestNew_Errors(t *testing.T) {
	short := append([]string(nil), tile2311Rows[:9]...)
	ragged := append([]string(nil), tile2311Rows...)
	ragged[4] = "#.#"
	dirty := append([]string(nil), tile2311Rows...)
	dirty[2] = "#...##..x."

	cases := []struct {
		name string
		id   tile.ID
		rows []string
		err  error
	}{
		{"ZeroID", 0, tile2311Rows, tile.ErrBadID},
		{"NegativeID", -3, tile2311Rows, tile.ErrBadID},
		{"TooFewRows", 17, short, tile.ErrBadSize},
		{"RaggedRow", 17, ragged, tile.ErrBadSize},
		{"BadCell", 17, dirty, tile.ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tile.New(tc.id, tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestEdgeIn_AllOrientations checks the oriented edge queries against a
// fixed tile with hand-computed patterns for each rotation.
func TestEdgeIn_AllOrientations(t *testing.T) {
	tl := &tile.Tile{ID: 1, Top: 0x2F9, Bottom: 0x077, Left: 0x325, Right: 0x16D}

	cases := []struct {
		o                        orient.Orientation
		top, bottom, left, right tile.EdgePattern
	}{
		{orient.R0, 0x2F9, 0x077, 0x325, 0x16D},
		{orient.R90, 0x16D, 0x325, 0x27D, 0x3B8},
		{orient.R180, 0x3B8, 0x27D, 0x2DA, 0x293},
		{orient.R270, 0x293, 0x2DA, 0x077, 0x2F9},
		{orient.R0FlipH, 0x27D, 0x3B8, 0x16D, 0x325},
		{orient.R0FlipV, 0x077, 0x2F9, 0x293, 0x2DA},
		{orient.R90FlipH, 0x2DA, 0x293, 0x3B8, 0x27D},
		{orient.R90FlipV, 0x325, 0x16D, 0x2F9, 0x077},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.top, tl.EdgeIn(tc.o, orient.Top), "%v top", tc.o)
		assert.Equal(t, tc.bottom, tl.EdgeIn(tc.o, orient.Bottom), "%v bottom", tc.o)
		assert.Equal(t, tc.left, tl.EdgeIn(tc.o, orient.Left), "%v left", tc.o)
		assert.Equal(t, tc.right, tl.EdgeIn(tc.o, orient.Right), "%v right", tc.o)
	}
}
