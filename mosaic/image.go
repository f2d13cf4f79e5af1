package mosaic

import (
	"strings"

	"github.com/katalvlaran/tessella/arrange"
	"github.com/katalvlaran/tessella/orient"
	"github.com/katalvlaran/tessella/tile"
)

// Image is a 2D character grid with an orientation tag. All coordinate
// access goes through the orientation's lens onto the fixed backing
// storage; reorienting is O(1) and copies nothing.
type Image struct {
	cells  [][]byte
	o      orient.Orientation
	sw, sh int
}

// New builds an Image with orientation R0 from rows of cell characters.
// Rows are deep-copied. Returns ErrEmptyImage or ErrNonRectangular.
// Complexity: O(W×H).
func New(rows []string) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	cells := make([][]byte, len(rows))
	for y, r := range rows {
		if len(r) != len(rows[0]) {
			return nil, ErrNonRectangular
		}
		cells[y] = []byte(r)
	}

	return &Image{cells: cells, sw: len(rows[0]), sh: len(rows)}, nil
}

// Assemble concatenates the trimmed interiors of a complete arrangement's
// tiles into one Image, each tile viewed under its stored orientation, in
// row-major tile order. Returns ErrIncomplete when any slot is empty.
// Complexity: O(W×H) over image cells.
func Assemble(a *arrange.Arrangement) (*Image, error) {
	const n = tile.InteriorSize
	w, h := a.Width()*n, a.Height()*n
	cells := make([][]byte, h)
	for y := range cells {
		cells[y] = make([]byte, w)
	}

	for ty := 0; ty < a.Height(); ty++ {
		for tx := 0; tx < a.Width(); tx++ {
			t, o, ok := a.At(orient.Pos{X: tx, Y: ty})
			if !ok {
				return nil, ErrIncomplete
			}
			// Lens over the tile's interior in its placed orientation.
			lens := &Image{cells: t.Interior(), o: o, sw: n, sh: n}
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					cells[ty*n+y][tx*n+x] = lens.At(orient.Pos{X: x, Y: y})
				}
			}
		}
	}

	return &Image{cells: cells, sw: w, sh: h}, nil
}

// Orientation returns the image's current orientation tag.
func (m *Image) Orientation() orient.Orientation { return m.o }

// SetOrientation retags the image. The backing storage is untouched; only
// the coordinate lens changes. Complexity: O(1).
func (m *Image) SetOrientation(o orient.Orientation) { m.o = o }

// Width returns the image width under the current orientation.
func (m *Image) Width() int {
	w, _ := m.o.Dims(m.sw, m.sh)

	return w
}

// Height returns the image height under the current orientation.
func (m *Image) Height() int {
	_, h := m.o.Dims(m.sw, m.sh)

	return h
}

// At returns the cell at logical position p under the current orientation.
func (m *Image) At(p orient.Pos) byte {
	sx, sy := m.o.Apply(p.X, p.Y, m.Width(), m.Height())

	return m.cells[sy][sx]
}

// set mutates the cell at logical position p in place.
func (m *Image) set(p orient.Pos, c byte) {
	sx, sy := m.o.Apply(p.X, p.Y, m.Width(), m.Height())
	m.cells[sy][sx] = c
}

// Count returns how many cells hold c, over the whole backing storage.
// The count is orientation-invariant.
func (m *Image) Count(c byte) int {
	total := 0
	for _, row := range m.cells {
		for _, cell := range row {
			if cell == c {
				total++
			}
		}
	}

	return total
}

// String renders the image row by row under the current orientation.
func (m *Image) String() string {
	var sb strings.Builder
	w, h := m.Width(), m.Height()
	sb.Grow(h * (w + 1))
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			sb.WriteByte(m.At(orient.Pos{X: x, Y: y}))
		}
	}

	return sb.String()
}
