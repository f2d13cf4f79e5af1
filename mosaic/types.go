// Package mosaic defines image cell constants and sentinel errors.
package mosaic

import "errors"

const (
	// Filled marks an occupied image cell.
	Filled byte = '#'
	// Empty marks an unoccupied image cell.
	Empty byte = '.'
	// Marked overwrites a Filled cell covered by a pattern match.
	Marked byte = 'O'
)

// Sentinel errors for mosaic operations.
var (
	// ErrEmptyImage indicates an image with no rows or no columns.
	ErrEmptyImage = errors.New("mosaic: image must have at least one row and one column")
	// ErrNonRectangular indicates image rows of differing lengths.
	ErrNonRectangular = errors.New("mosaic: all image rows must have the same length")
	// ErrIncomplete indicates an arrangement with empty slots; an image can
	// only be assembled once every position is placed.
	ErrIncomplete = errors.New("mosaic: arrangement is not complete")
)
