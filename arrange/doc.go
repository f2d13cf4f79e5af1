// Package arrange assembles square mosaics from bit-edged tiles via
// backtracking search over a precomputed compatibility index.
//
// What:
//
//   - Index: the one-time compatibility precomputation. For every
//     (tile, orientation, relationship) it records the set of oriented tiles
//     whose touching edge matches bit-for-bit. Get is total: missing keys
//     yield the empty set, never an error.
//   - Arrangement: a mutable fixed-size placement grid, the pool of unplaced
//     tiles, and the frontier of empty positions adjacent to placed tiles.
//     Place and Remove form an exact undo pair.
//   - PossibleOrientations: intersects the index sets of every placed
//     orthogonal neighbor; an empty intersection fails with a ConflictError
//     blaming the neighbor that emptied it.
//   - Solve: anchors every tile in every orientation at the origin and runs
//     a depth-first search with conflict-directed backjumping — when a deeper
//     failure blames a tile other than the one just tried, the current choice
//     point is skipped entirely.
//
// Why:
//
//   - Without the index, every placement test is an edge comparison against
//     all remaining tiles in all orientations; with it, the search reduces to
//     set intersections over precomputed neighbor sets.
//   - Backjumping prunes whole subtrees: a conflict caused by a shallow
//     placement cannot be fixed by retrying deeper siblings.
//
// Complexity:
//
//   - NewIndex: O(T² × 8² × 4) edge comparisons for T tiles, built once.
//   - Place, Remove: O(1). PossibleOrientations: O(k) over neighbor sets.
//   - Solve: exponential worst case; in practice the index plus backjumping
//     keeps the search near-linear in grid cells for real puzzles.
//
// Errors:
//
//   - *ConflictError: the one recoverable failure — no compatible candidate
//     under the current partial assignment, carrying the blamed tile id.
//   - ErrNilIndex, ErrBadDims, ErrTileCount, ErrDuplicateID: construction.
//   - ErrOutOfBounds, ErrOccupied, ErrEmpty, ErrTileUnavailable,
//     ErrNoPlacedNeighbor: structural precondition violations, never retried.
//   - ErrUnsolvable: every anchor choice exhausted without a solution.
package arrange
