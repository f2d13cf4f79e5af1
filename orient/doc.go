// Package orient models the 8 symmetries of a square (4 rotations × optional
// reflection) as pure lookup tables, together with the grid coordinates they
// act on.
//
// What:
//
//   - Orientation: one of 8 values (R0…R90FlipV) forming the dihedral group D4.
//   - EdgeOn: which canonical edge (possibly bit-reversed) shows on a queried
//     side once the orientation is applied.
//   - Apply: the coordinate lens — maps a logical (x,y) under an orientation
//     to the underlying storage coordinates, without copying any storage.
//   - Dims: oriented width/height for a given storage width/height.
//   - Inverse: the orientation that undoes another (Apply∘Apply⁻¹ = identity).
//   - Pos: a concrete integer grid coordinate with orthogonal neighbor steps.
//
// Why:
//
//   - Every correctness property of the mosaic solver reduces to these tables
//     being exact: two tiles agree through their orientations exactly when
//     their canonical edges, correctly transformed, are bit-identical.
//   - Keeping the tables in one pure, stateless package lets both the tile
//     compatibility index and the image pattern search share them.
//
// Complexity:
//
//   - All operations are O(1) table lookups or integer arithmetic.
//
// The package has no errors: every Orientation and Side value is total over
// its closed set of constants.
package orient
