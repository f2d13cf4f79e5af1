// Package tessella reconstructs square mosaics from jigsaw tiles whose four
// edges carry fixed-width bit patterns, then hunts bitmap patterns inside the
// assembled picture.
//
// 🧩 What is tessella?
//
//	A pure-Go constraint-satisfaction engine that brings together:
//		• Edge patterns: 10-bit tile edges with involutive bit-reversal
//		• Orientations: the full dihedral group of 8 symmetries, as pure tables
//		• Compatibility index: (tile, orientation, relation) → allowed neighbours,
//		  built once, queried hundreds of thousands of times
//		• Backtracking search: frontier-driven DFS with conflict-directed
//		  backjumping (failures carry the blamed tile, irrelevant choice
//		  points are skipped)
//		• Image lens: orientation-aware coordinate views over the assembled
//		  picture, plus overlapping pattern matching and cell marking
//
// ✨ Why choose tessella?
//
//   - Deterministic – no randomness, no time-based behavior
//   - Explicit failures – blame travels in a result type, never a panic
//   - Pure Go – no cgo, tiny dependency surface
//   - Hookable – OnPlace/OnRemove/OnAnchor hooks for tracing the search
//
// Everything is organized under five subpackages:
//
//	orient/  — orientations, sides, edge-transform table, coordinate lens
//	tile/    — edge patterns, tiles, oriented edge queries
//	arrange/ — compatibility index, placement grid, backjumping solver
//	mosaic/  — image assembly, pattern search, roughness count
//	tileset/ — text-format tile parser
//
// Quick ASCII example:
//
//	    ┌──┬──┐
//	    │A │B │      tiles A,B,C,D placed so every touching
//	    ├──┼──┤      edge pair matches bit-for-bit, each tile
//	    │C │D │      in one of its 8 orientations
//	    └──┴──┘
//
// See cmd/tessella for an end-to-end solver binary.
package tessella
