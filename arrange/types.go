// Package arrange defines the search's types, options, hooks and sentinel errors.
package arrange

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tessella/orient"
	"github.com/katalvlaran/tessella/tile"
)

// Relationship names the position of a neighbor relative to a reference tile.
type Relationship uint8

const (
	// Above means the neighbor sits directly above the reference tile.
	Above Relationship = iota
	// Below means the neighbor sits directly below the reference tile.
	Below
	// LeftOf means the neighbor sits directly left of the reference tile.
	LeftOf
	// RightOf means the neighbor sits directly right of the reference tile.
	RightOf
)

var relationshipNames = [4]string{"Above", "Below", "LeftOf", "RightOf"}

// String returns the canonical name of r, or "Rel?" for out-of-range values.
func (r Relationship) String() string {
	if int(r) >= len(relationshipNames) {
		return "Rel?"
	}

	return relationshipNames[r]
}

// OrientedTile pairs a tile id with an orientation. It is the element type
// of compatibility sets and the key of search decisions.
type OrientedTile struct {
	ID          tile.ID
	Orientation orient.Orientation
}

// String formats the pair as "id/orientation".
func (ot OrientedTile) String() string {
	return fmt.Sprintf("%d/%v", ot.ID, ot.Orientation)
}

// UnknownTile is the blame value used when a failure cannot be attributed
// to a specific placed tile (all candidates at a position were exhausted).
// Valid tile ids are positive, so it never collides.
const UnknownTile tile.ID = 0

// ConflictError is the one recoverable failure of the search: no compatible
// candidate exists for a position under the current partial assignment.
// Blame carries the id of the placed tile that caused the conflict, enabling
// conflict-directed backjumping; it is UnknownTile when unattributable.
type ConflictError struct {
	Blame tile.ID
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	if e.Blame == UnknownTile {
		return "arrange: no compatible candidate for position"
	}

	return fmt.Sprintf("arrange: no compatible candidate for position (conflicts with tile %d)", e.Blame)
}

// Sentinel errors for arrangement construction and structural preconditions.
// Structural violations are programming faults: they are reported once and
// never retried by the search.
var (
	// ErrNilIndex indicates a nil compatibility index was supplied.
	ErrNilIndex = errors.New("arrange: compatibility index is nil")
	// ErrBadDims indicates non-positive grid dimensions.
	ErrBadDims = errors.New("arrange: grid dimensions must be positive")
	// ErrTileCount indicates the tile set does not cover the grid exactly.
	ErrTileCount = errors.New("arrange: tile count must equal width×height")
	// ErrDuplicateID indicates two tiles share an id.
	ErrDuplicateID = errors.New("arrange: duplicate tile id")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("arrange: position out of bounds")
	// ErrOccupied indicates a position that already holds a tile.
	ErrOccupied = errors.New("arrange: position already occupied")
	// ErrEmpty indicates a position that holds no tile.
	ErrEmpty = errors.New("arrange: position is empty")
	// ErrTileUnavailable indicates the requested tile is not in the pool.
	ErrTileUnavailable = errors.New("arrange: tile not available in pool")
	// ErrNoPlacedNeighbor indicates a candidate query on a position with no
	// placed orthogonal neighbor, which the frontier invariant forbids.
	ErrNoPlacedNeighbor = errors.New("arrange: position has no placed neighbor")
	// ErrUnsolvable indicates every anchor choice was exhausted.
	ErrUnsolvable = errors.New("arrange: puzzle has no valid arrangement")
)

// Option configures optional behavior of the arrangement search.
// Use with Solve(w, h, tiles, opts...) or New.
type Option func(*Options)

// Options holds the diagnostic hooks of the search. Hooks observe the
// search; they must not mutate the Arrangement.
type Options struct {
	// OnPlace, if non-nil, is invoked after each successful placement.
	OnPlace func(p orient.Pos, ot OrientedTile)

	// OnRemove, if non-nil, is invoked after each successful removal.
	OnRemove func(p orient.Pos, id tile.ID)

	// OnAnchor, if non-nil, is invoked each time Solve fixes a new anchor
	// candidate at the origin.
	OnAnchor func(ot OrientedTile)
}

// DefaultOptions returns an Options struct with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnPlace returns an Option that installs fn as the placement hook.
func WithOnPlace(fn func(p orient.Pos, ot OrientedTile)) Option {
	return func(o *Options) {
		o.OnPlace = fn
	}
}

// WithOnRemove returns an Option that installs fn as the removal hook.
func WithOnRemove(fn func(p orient.Pos, id tile.ID)) Option {
	return func(o *Options) {
		o.OnRemove = fn
	}
}

// WithOnAnchor returns an Option that installs fn as the anchor hook.
func WithOnAnchor(fn func(ot OrientedTile)) Option {
	return func(o *Options) {
		o.OnAnchor = fn
	}
}
