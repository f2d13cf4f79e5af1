package tile

import (
	"fmt"

	"github.com/katalvlaran/tessella/orient"
)

// Tile is an immutable parsed jigsaw tile: a unique id, the four canonical
// edges of its unrotated grid, and the interior content trimmed of the
// one-cell border that carries the edge patterns.
type Tile struct {
	// ID uniquely identifies the tile within a puzzle.
	ID ID
	// Top, Bottom, Left and Right are the canonical (unrotated) edges.
	// Top and Bottom read left-to-right; Left and Right read top-to-bottom.
	Top, Bottom, Left, Right EdgePattern

	interior [][]byte
}

// New builds a Tile from its id and raw Size×Size rows of '#'/'.' cells.
// It decodes the four border edges and deep-copies the trimmed interior.
// Returns ErrBadID, ErrBadSize or ErrBadCell on invalid input.
// Complexity: O(Size²).
func New(id ID, rows []string) (*Tile, error) {
	// 1. Validate id and overall shape.
	if id <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrBadID, id)
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("%w (got %d rows)", ErrBadSize, len(rows))
	}
	var row string
	for y, r := range rows {
		if len(r) != Size {
			return nil, fmt.Errorf("%w (row %d has %d cells)", ErrBadSize, y, len(r))
		}
		row = r
		for x := 0; x < Size; x++ {
			if row[x] != Filled && row[x] != Empty {
				return nil, fmt.Errorf("%w (cell (%d,%d) = %q)", ErrBadCell, x, y, row[x])
			}
		}
	}

	// 2. Decode border edges.
	t := &Tile{
		ID:     id,
		Top:    decodeRow(rows[0]),
		Bottom: decodeRow(rows[Size-1]),
		Left:   decodeColumn(rows, 0),
		Right:  decodeColumn(rows, Size-1),
	}

	// 3. Trim the border off the interior.
	t.interior = make([][]byte, InteriorSize)
	for y := 0; y < InteriorSize; y++ {
		t.interior[y] = []byte(rows[y+1][1 : Size-1])
	}

	return t, nil
}

// decodeRow folds one raw row into an EdgePattern, leftmost cell first.
func decodeRow(row string) EdgePattern {
	var p EdgePattern
	for x := 0; x < Size; x++ {
		p <<= 1
		if row[x] == Filled {
			p |= 1
		}
	}

	return p
}

// decodeColumn folds one raw column into an EdgePattern, topmost cell first.
func decodeColumn(rows []string, x int) EdgePattern {
	var p EdgePattern
	for y := 0; y < Size; y++ {
		p <<= 1
		if rows[y][x] == Filled {
			p |= 1
		}
	}

	return p
}

// Edge returns the canonical (unrotated) edge on side s.
func (t *Tile) Edge(s orient.Side) EdgePattern {
	switch s {
	case orient.Top:
		return t.Top
	case orient.Bottom:
		return t.Bottom
	case orient.Left:
		return t.Left
	default:
		return t.Right
	}
}

// EdgeIn returns the edge visible on side s once orientation o is applied,
// bit-reversed when the transform requires the opposite reading direction.
// Complexity: O(1).
func (t *Tile) EdgeIn(o orient.Orientation, s orient.Side) EdgePattern {
	ref := o.EdgeOn(s)
	p := t.Edge(ref.Side)
	if ref.Reversed {
		p = p.Reversed()
	}

	return p
}

// Interior returns a deep copy of the trimmed InteriorSize×InteriorSize
// content grid. Valid tiles always have one; callers own the copy.
func (t *Tile) Interior() [][]byte {
	out := make([][]byte, len(t.interior))
	for y, r := range t.interior {
		out[y] = append([]byte(nil), r...)
	}

	return out
}

// String formats the tile as "Tile <id>".
func (t *Tile) String() string {
	return fmt.Sprintf("Tile %d", t.ID)
}
