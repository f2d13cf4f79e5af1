package arrange

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/tessella/orient"
	"github.com/katalvlaran/tessella/tile"
)

// placement is one grid slot: empty when t is nil.
type placement struct {
	t *tile.Tile
	o orient.Orientation
}

// Arrangement is a mutable fixed-size placement grid together with the pool
// of unplaced tiles and the frontier of empty positions adjacent to at least
// one placed tile. It is exclusively owned by the running search; Place and
// Remove form an exact undo pair, so any failed subtree leaves the structure
// bit-identical to its pre-call state.
type Arrangement struct {
	width, height int
	cells         [][]placement
	pool          map[tile.ID]*tile.Tile
	frontier      map[orient.Pos]struct{}
	index         *Index
	opts          Options
}

// New creates an empty width×height Arrangement over tiles, using the given
// compatibility index. The tile set must cover the grid exactly and carry
// unique ids. Returns ErrNilIndex, ErrBadDims, ErrTileCount or
// ErrDuplicateID on invalid input. Complexity: O(width×height + T).
func New(width, height int, tiles []*tile.Tile, ix *Index, opts ...Option) (*Arrangement, error) {
	// 1. Validate inputs.
	if ix == nil {
		return nil, ErrNilIndex
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %d×%d)", ErrBadDims, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w (got %d tiles for %d×%d)", ErrTileCount, len(tiles), width, height)
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Build the empty grid and the full pool.
	a := &Arrangement{
		width:    width,
		height:   height,
		cells:    make([][]placement, height),
		pool:     make(map[tile.ID]*tile.Tile, len(tiles)),
		frontier: make(map[orient.Pos]struct{}),
		index:    ix,
		opts:     dopts,
	}
	for y := 0; y < height; y++ {
		a.cells[y] = make([]placement, width)
	}
	for _, t := range tiles {
		if _, dup := a.pool[t.ID]; dup {
			return nil, fmt.Errorf("%w (%d)", ErrDuplicateID, t.ID)
		}
		a.pool[t.ID] = t
	}

	return a, nil
}

// Width returns the grid width in tiles.
func (a *Arrangement) Width() int { return a.width }

// Height returns the grid height in tiles.
func (a *Arrangement) Height() int { return a.height }

// InBounds reports whether p lies within the grid. Complexity: O(1).
func (a *Arrangement) InBounds(p orient.Pos) bool {
	return p.X >= 0 && p.X < a.width && p.Y >= 0 && p.Y < a.height
}

// At returns the tile and orientation placed at p. ok is false when p is
// out of bounds or empty.
func (a *Arrangement) At(p orient.Pos) (t *tile.Tile, o orient.Orientation, ok bool) {
	if !a.InBounds(p) {
		return nil, orient.R0, false
	}
	c := a.cells[p.Y][p.X]
	if c.t == nil {
		return nil, orient.R0, false
	}

	return c.t, c.o, true
}

// TileIDAt returns the id of the tile placed at p; ok is false when p is
// out of bounds or empty. Read-only query for corner-product computation.
func (a *Arrangement) TileIDAt(p orient.Pos) (id tile.ID, ok bool) {
	t, _, ok := a.At(p)
	if !ok {
		return 0, false
	}

	return t.ID, true
}

// Available reports whether the tile with the given id is still unplaced.
func (a *Arrangement) Available(id tile.ID) bool {
	_, ok := a.pool[id]

	return ok
}

// PoolSize returns the number of unplaced tiles.
func (a *Arrangement) PoolSize() int { return len(a.pool) }

// Complete reports whether every tile has been placed.
func (a *Arrangement) Complete() bool { return len(a.pool) == 0 }

// Frontier returns the empty positions adjacent to at least one placed
// tile, sorted row-major. Diagnostic copy; mutating it has no effect.
func (a *Arrangement) Frontier() []orient.Pos {
	out := make([]orient.Pos, 0, len(a.frontier))
	for p := range a.frontier {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// hasPlacedNeighbor reports whether any in-bounds orthogonal neighbor of p
// holds a tile.
func (a *Arrangement) hasPlacedNeighbor(p orient.Pos) bool {
	for _, n := range p.Neighbors() {
		if _, _, ok := a.At(n); ok {
			return true
		}
	}

	return false
}

// Place moves tile id from the pool into position p under orientation o,
// removes p from the frontier and extends the frontier with each in-bounds,
// still-empty neighbor of p. Returns ErrOutOfBounds, ErrOccupied or
// ErrTileUnavailable when a precondition fails, leaving the Arrangement
// untouched. Complexity: O(1).
func (a *Arrangement) Place(p orient.Pos, o orient.Orientation, id tile.ID) error {
	if !a.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if a.cells[p.Y][p.X].t != nil {
		return fmt.Errorf("%w: %v", ErrOccupied, p)
	}
	t, ok := a.pool[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrTileUnavailable, id)
	}

	delete(a.pool, id)
	a.cells[p.Y][p.X] = placement{t: t, o: o}
	delete(a.frontier, p)
	for _, n := range p.Neighbors() {
		if a.InBounds(n) && a.cells[n.Y][n.X].t == nil {
			a.frontier[n] = struct{}{}
		}
	}

	if a.opts.OnPlace != nil {
		a.opts.OnPlace(p, OrientedTile{ID: id, Orientation: o})
	}

	return nil
}

// Remove is the exact inverse of Place: it returns the tile at p to the
// pool, drops any neighbor that no longer borders a placed tile from the
// frontier, and re-adds p itself when it still borders one. Returns
// ErrOutOfBounds or ErrEmpty when a precondition fails. Complexity: O(1).
func (a *Arrangement) Remove(p orient.Pos) error {
	if !a.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	c := a.cells[p.Y][p.X]
	if c.t == nil {
		return fmt.Errorf("%w: %v", ErrEmpty, p)
	}

	a.pool[c.t.ID] = c.t
	a.cells[p.Y][p.X] = placement{}

	// Restore the frontier invariant: empty in-bounds cells belong to the
	// frontier iff they border a placed tile.
	for _, n := range p.Neighbors() {
		if a.InBounds(n) && a.cells[n.Y][n.X].t == nil && !a.hasPlacedNeighbor(n) {
			delete(a.frontier, n)
		}
	}
	if a.hasPlacedNeighbor(p) {
		a.frontier[p] = struct{}{}
	}

	if a.opts.OnRemove != nil {
		a.opts.OnRemove(p, c.t.ID)
	}

	return nil
}

// candidateSet accumulates the intersection of neighbor compatibility sets.
// It starts unrestricted (the universe) so the first restriction replaces it
// rather than intersecting with nothing.
type candidateSet struct {
	unrestricted bool
	members      map[OrientedTile]struct{}
}

// newCandidateSet returns an unrestricted set.
func newCandidateSet() candidateSet {
	return candidateSet{unrestricted: true}
}

// restrict intersects the set with allowed.
func (s *candidateSet) restrict(allowed map[OrientedTile]struct{}) {
	if s.unrestricted {
		s.unrestricted = false
		s.members = make(map[OrientedTile]struct{}, len(allowed))
		for ot := range allowed {
			s.members[ot] = struct{}{}
		}

		return
	}
	for ot := range s.members {
		if _, ok := allowed[ot]; !ok {
			delete(s.members, ot)
		}
	}
}

// empty reports whether the set has been restricted down to nothing.
func (s *candidateSet) empty() bool {
	return !s.unrestricted && len(s.members) == 0
}

// PossibleOrientations intersects, across every placed orthogonal neighbor
// of p, the compatibility sets the index reports for that neighbor's
// (tile, orientation, opposite relationship). When any single neighbor
// narrows the candidates to the empty set the computation fails immediately
// with a *ConflictError blaming that neighbor's tile. A position with no
// placed neighbor violates the frontier invariant and is the fatal
// ErrNoPlacedNeighbor, not a conflict. Candidates are returned sorted by
// (id, orientation) for deterministic search order.
// Complexity: O(k log k) over the smallest neighbor set size k.
func (a *Arrangement) PossibleOrientations(p orient.Pos) ([]OrientedTile, error) {
	if !a.InBounds(p) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if a.cells[p.Y][p.X].t != nil {
		return nil, fmt.Errorf("%w: %v", ErrOccupied, p)
	}

	// Each placed neighbor constrains p through the opposite relationship:
	// the tile left of p must accept p's tile RightOf it, and so on.
	possible := newCandidateSet()
	neighbors := [4]struct {
		at  orient.Pos
		rel Relationship
	}{
		{p.Left(), RightOf},
		{p.Up(), Below},
		{p.Right(), LeftOf},
		{p.Down(), Above},
	}
	for _, nb := range neighbors {
		t, o, ok := a.At(nb.at)
		if !ok {
			continue
		}
		possible.restrict(a.index.Get(t.ID, o, nb.rel))
		if possible.empty() {
			return nil, &ConflictError{Blame: t.ID}
		}
	}
	if possible.unrestricted {
		return nil, fmt.Errorf("%w: %v", ErrNoPlacedNeighbor, p)
	}

	out := make([]OrientedTile, 0, len(possible.members))
	for ot := range possible.members {
		out = append(out, ot)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}

		return out[i].Orientation < out[j].Orientation
	})

	return out, nil
}

// String renders the grid as rows of tile ids, "----" for empty slots.
func (a *Arrangement) String() string {
	var sb strings.Builder
	for y := 0; y < a.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < a.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if t := a.cells[y][x].t; t != nil {
				fmt.Fprintf(&sb, "%4d", t.ID)
			} else {
				sb.WriteString("----")
			}
		}
	}

	return sb.String()
}
