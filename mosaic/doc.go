// Package mosaic assembles the picture hidden in a completed tile
// arrangement and searches it for bitmap patterns.
//
// What:
//
//   - Image: a 2D character grid carrying an orientation tag. Reads go
//     through the orient coordinate lens, so reorienting an image never
//     copies its backing storage; writes mutate in place (pattern marking).
//   - Assemble: concatenates the trimmed interiors of a complete
//     Arrangement's tiles, each viewed under its stored orientation, in
//     row-major tile order.
//   - FindPattern: slides a pattern over every valid top-left offset of the
//     current orientation; matches may overlap and are each honored —
//     origins are collected first, then every matched cell is marked.
//   - FindMonsters: tries the 8 orientations in turn, stops at the first
//     that yields at least one match, and reports the count of filled cells
//     left unmarked (the "roughness").
//
// Why:
//
//   - The arrangement fixes the picture only up to a symmetry of the square;
//     the pattern appears under exactly one of the 8 orientations, so the
//     sweep is both necessary and cheap.
//
// Complexity:
//
//   - Assemble: O(W×H) cells. FindPattern: O(W×H×pw×ph).
//
// Errors:
//
//   - ErrEmptyImage: a constructed image has no rows or no columns.
//   - ErrNonRectangular: image rows differ in length.
//   - ErrIncomplete: Assemble was given an arrangement with empty slots.
package mosaic
