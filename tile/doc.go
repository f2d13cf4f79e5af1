// Package tile models square jigsaw tiles whose four sides carry fixed-width
// bit patterns.
//
// What:
//
//   - EdgePattern: a 10-bit pattern encoding filled/empty cells along one
//     side, read top-to-bottom or left-to-right; Reversed flips the reading
//     direction and is an involution.
//   - Tile: an immutable parsed tile — unique positive ID, the four canonical
//     (unrotated) edges, and the interior grid trimmed of its one-cell border.
//   - EdgeIn: the edge visible on a given side once an orientation is
//     applied, via the orient package's transform table.
//
// Why:
//
//   - Edge equality is the whole matching relation of the mosaic solver: two
//     adjacent tiles fit exactly when their touching oriented edges are
//     bit-identical.
//   - Bit patterns make that comparison a single integer equality instead of
//     a cell-by-cell scan.
//
// Complexity:
//
//   - New: O(Size²) one-time decode. Reversed, Edge, EdgeIn: O(1).
//
// Errors:
//
//   - ErrBadID: tile id is not positive.
//   - ErrBadSize: the raw grid is not exactly Size×Size.
//   - ErrBadCell: a grid cell is neither '#' nor '.'.
package tile
