package arrange

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tessella/orient"
	"github.com/katalvlaran/tessella/tile"
)

// tryArrange runs the recursive depth-first search over the frontier.
// It returns nil once the frontier is empty (grid fully covered), a
// *ConflictError on a recoverable dead end, or a fatal structural error.
//
// Backjumping: when a deeper failure blames a tile other than the one just
// tried here, no sibling candidate at this position can resolve it — the
// true conflict lies at a shallower choice point — so the blame propagates
// upward untouched. Recursion depth is bounded by the grid cell count.
func (a *Arrangement) tryArrange() error {
	// 1. Empty frontier means every reachable position is covered.
	var (
		pos   orient.Pos
		found bool
	)
	for p := range a.frontier {
		pos, found = p, true

		break
	}
	if !found {
		return nil
	}

	// 2. Candidates for this position. A conflict here already names the
	// placed tile responsible; propagate it without trying anything.
	candidates, err := a.PossibleOrientations(pos)
	if err != nil {
		return err
	}

	// 3. Try each candidate in turn with exact undo.
	var conflict *ConflictError
	for _, cand := range candidates {
		// The index ranges over all tiles; skip those already placed.
		if !a.Available(cand.ID) {
			continue
		}
		if err = a.Place(pos, cand.Orientation, cand.ID); err != nil {
			return err
		}

		err = a.tryArrange()
		if err == nil {
			return nil
		}
		if rmErr := a.Remove(pos); rmErr != nil {
			return rmErr
		}
		if !errors.As(err, &conflict) {
			// Structural fault below; abort the whole search.
			return err
		}
		if conflict.Blame != cand.ID {
			// Cut the search back to the frame that placed the blamed tile.
			return conflict
		}
	}

	// 4. Exhausted every candidate: a dead end with no single culprit.
	return &ConflictError{Blame: UnknownTile}
}

// Solve reconstructs the unique width×height mosaic from tiles. It builds
// the compatibility index once, then fixes every tile in every orientation
// as the anchor at the origin and backtracks from there, returning the
// first complete arrangement. The result's corner ids and assembled image
// are unique up to the anchor's own symmetry.
//
// Returns ErrUnsolvable after exhausting every anchor choice, or a fatal
// structural error as-is. Complexity: index O(T²×8²×4) once, plus the
// backjumping search per anchor.
func Solve(width, height int, tiles []*tile.Tile, opts ...Option) (*Arrangement, error) {
	// Validate shape before paying for the index.
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %d×%d)", ErrBadDims, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w (got %d tiles for %d×%d)", ErrTileCount, len(tiles), width, height)
	}

	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	ix := NewIndex(tiles)
	origin := orient.Pos{}

	var conflict *ConflictError
	for _, t := range tiles {
		for _, o := range orient.All() {
			if dopts.OnAnchor != nil {
				dopts.OnAnchor(OrientedTile{ID: t.ID, Orientation: o})
			}

			a, err := New(width, height, tiles, ix, opts...)
			if err != nil {
				return nil, err
			}
			if err = a.Place(origin, o, t.ID); err != nil {
				return nil, err
			}

			err = a.tryArrange()
			if err == nil {
				return a, nil
			}
			if !errors.As(err, &conflict) {
				return nil, err
			}
			// Recoverable dead end: discard and try the next anchor.
		}
	}

	return nil, ErrUnsolvable
}
