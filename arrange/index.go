package arrange

import (
	"github.com/katalvlaran/tessella/orient"
	"github.com/katalvlaran/tessella/tile"
)

// indexKey addresses one compatibility set: the oriented tiles allowed in
// relationship rel to tile id under orientation o.
type indexKey struct {
	id  tile.ID
	o   orient.Orientation
	rel Relationship
}

// Index is the immutable compatibility precomputation over a tile set.
// Built once per puzzle before any search begins; it must agree with direct
// edge comparison at all times, which the tests verify exhaustively.
type Index struct {
	neighbors map[indexKey]map[OrientedTile]struct{}
}

// NewIndex builds the compatibility index for tiles. For every ordered pair
// of distinct tiles and every combination of their orientations it compares
// the touching edges in all four relationships and records the matches.
// Complexity: O(T² × 8² × 4) edge comparisons; memory proportional to the
// number of compatible pairs.
func NewIndex(tiles []*tile.Tile) *Index {
	all := orient.All()
	ix := &Index{
		neighbors: make(map[indexKey]map[OrientedTile]struct{}, len(tiles)*len(all)*4),
	}

	var (
		top, bottom, left, right tile.EdgePattern
		cand                     OrientedTile
	)
	for _, t := range tiles {
		for _, o := range all {
			// Edges of the reference tile under o, computed once per pair set.
			top = t.EdgeIn(o, orient.Top)
			bottom = t.EdgeIn(o, orient.Bottom)
			left = t.EdgeIn(o, orient.Left)
			right = t.EdgeIn(o, orient.Right)

			above := make(map[OrientedTile]struct{})
			below := make(map[OrientedTile]struct{})
			leftOf := make(map[OrientedTile]struct{})
			rightOf := make(map[OrientedTile]struct{})

			for _, c := range tiles {
				if c.ID == t.ID {
					continue
				}
				for _, co := range all {
					cand = OrientedTile{ID: c.ID, Orientation: co}
					if c.EdgeIn(co, orient.Bottom) == top {
						above[cand] = struct{}{}
					}
					if c.EdgeIn(co, orient.Top) == bottom {
						below[cand] = struct{}{}
					}
					if c.EdgeIn(co, orient.Right) == left {
						leftOf[cand] = struct{}{}
					}
					if c.EdgeIn(co, orient.Left) == right {
						rightOf[cand] = struct{}{}
					}
				}
			}

			ix.neighbors[indexKey{t.ID, o, Above}] = above
			ix.neighbors[indexKey{t.ID, o, Below}] = below
			ix.neighbors[indexKey{t.ID, o, LeftOf}] = leftOf
			ix.neighbors[indexKey{t.ID, o, RightOf}] = rightOf
		}
	}

	return ix
}

// Get returns the set of oriented tiles allowed in relationship rel to tile
// id under orientation o. The lookup is total: unknown keys yield a nil
// (empty) set, never an error. The returned set is shared and must be
// treated as read-only. Complexity: O(1).
func (ix *Index) Get(id tile.ID, o orient.Orientation, rel Relationship) map[OrientedTile]struct{} {
	return ix.neighbors[indexKey{id, o, rel}]
}
