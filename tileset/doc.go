// Package tileset parses the textual tile-record format into tile values.
//
// What:
//
//   - Parse / ParseString: read blank-line-separated records, each a
//     "Tile <id>:" header followed by a square grid of '#'/'.' markers,
//     and produce the corresponding []*tile.Tile.
//
// Why:
//
//   - The solver consumes tiles only as already-decoded values; this package
//     is the one conforming producer the repository ships. Any other parser
//     yielding the same shape works just as well.
//
// Errors:
//
//   - ErrBadHeader: a record does not start with a well-formed header.
//   - ErrEmptyInput: the input contains no tile records at all.
//   - tile.ErrBadID, tile.ErrBadSize, tile.ErrBadCell: wrapped per record
//     with the offending tile id.
package tileset
