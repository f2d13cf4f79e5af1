// Package example carries the canonical 9-tile worked puzzle shared by the
// package tests and runnable examples: a 3×3 mosaic whose corner-id product
// is 20899048083289 and whose assembled 24×24 image hides 2 sea monsters,
// leaving a roughness of 273.
package example

import (
	"fmt"

	"github.com/katalvlaran/tessella/tile"
	"github.com/katalvlaran/tessella/tileset"
)

// Width and Height are the worked puzzle's grid dimensions in tiles.
const (
	Width  = 3
	Height = 3
)

// CornerProduct is the product of the four corner tile ids.
const CornerProduct int64 = 20899048083289

// Monsters and Roughness are the expected pattern-search results.
const (
	Monsters  = 2
	Roughness = 273
)

// Input is the raw tile-record text of the worked puzzle.
const Input = `Tile 2311:
..##.#..#.
##..#.....
#...##..#.
####.#...#
##.##.###.
##...#.###
.#.#.#..##
..#....#..
###...#.#.
..###..###

Tile 1951:
#.##...##.
#.####...#
.....#..##
#...######
.##.#....#
.###.#####
###.##.##.
.###....#.
..#.#..#.#
#...##.#..

Tile 1171:
####...##.
#..##.#..#
##.#..#.#.
.###.####.
..###.####
.##....##.
.#...####.
#.##.####.
####..#...
.....##...

Tile 1427:
###.##.#..
.#..#.##..
.#.##.#..#
#.#.#.##.#
....#...##
...##..##.
...#.#####
.#.####.#.
..#..###.#
..##.#..#.

Tile 1489:
##.#.#....
..##...#..
.##..##...
..#...#...
#####...#.
#..#.#.#.#
...#.#.#..
##.#...##.
..##.##.##
###.##.#..

Tile 2473:
#....####.
#..#.##...
#.##..#...
######.#.#
.#...#.#.#
.#########
.###.#..#.
########.#
##...##.#.
..###.#.#.

Tile 2971:
..#.#....#
#...###...
#.#.###...
##.##..#..
.#####..##
.#..####.#
#..#.#..#.
..####.###
..#.#.###.
...#.#.#.#

Tile 2729:
...#.#.#.#
####.#....
..#.#.....
....#..#.#
.##..##.#.
.#.####...
####.#.#..
##.####...
##..#.##..
#.##...##.

Tile 3079:
#.#.#####.
.#..######
..#.......
######....
####.#..#.
.#...#.##.
#.#####.##
..#.###...
..#.......
..#.###...
`

// CornerIDs are the ids that must occupy the four corners of any solution,
// in no particular order.
var CornerIDs = []tile.ID{1951, 3079, 2971, 1171}

// Tiles parses Input. The fixture is known-good, so failures panic.
func Tiles() []*tile.Tile {
	tiles, err := tileset.ParseString(Input)
	if err != nil {
		panic(fmt.Sprintf("example: fixture must parse: %v", err))
	}

	return tiles
}
