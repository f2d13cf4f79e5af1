// Package tile defines tile constants and sentinel errors.
package tile

import "errors"

const (
	// Size is the side length of a raw tile grid, border included.
	Size = 10
	// EdgeBits is the width of an edge pattern in bits; equal to Size.
	EdgeBits = 10
	// InteriorSize is the side length of the trimmed interior grid.
	InteriorSize = Size - 2

	// Filled marks an occupied cell in raw tile text.
	Filled byte = '#'
	// Empty marks an unoccupied cell in raw tile text.
	Empty byte = '.'
)

// ID identifies a tile. IDs are positive; 0 is reserved by the arrangement
// search as the "unspecified" blame value.
type ID int64

// Sentinel errors for tile construction.
var (
	// ErrBadID indicates a non-positive tile id.
	ErrBadID = errors.New("tile: id must be positive")
	// ErrBadSize indicates the raw grid is not exactly Size×Size.
	ErrBadSize = errors.New("tile: grid must be exactly 10×10")
	// ErrBadCell indicates a grid cell outside {'#', '.'}.
	ErrBadCell = errors.New("tile: cell must be '#' or '.'")
)
