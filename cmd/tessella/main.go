// Command tessella solves a jigsaw-tile puzzle end to end: it parses a tile
// file, reconstructs the mosaic, prints the product of the four corner tile
// ids, then assembles the image and hunts sea monsters, printing the match
// count and the remaining roughness.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tessella/arrange"
	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/orient"
	"github.com/katalvlaran/tessella/tile"
	"github.com/katalvlaran/tessella/tileset"
)

var (
	flagWidth   int
	flagHeight  int
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:          "tessella <tiles-file>",
		Short:        "reconstruct a jigsaw mosaic and hunt sea monsters in it",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().IntVar(&flagWidth, "width", 0, "grid width in tiles (default: √tile-count)")
	root.Flags().IntVar(&flagHeight, "height", 0, "grid height in tiles (default: √tile-count)")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every search step")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := newLogger(flagVerbose)

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	tiles, err := tileset.Parse(f)
	if err != nil {
		return err
	}
	log.Info().Int("tiles", len(tiles)).Msg("parsed input")

	width, height, err := gridDims(len(tiles))
	if err != nil {
		return err
	}

	a, err := arrange.Solve(width, height, tiles, searchHooks(log)...)
	if err != nil {
		return fmt.Errorf("arrange %d×%d: %w", width, height, err)
	}

	product := int64(1)
	for _, p := range []orient.Pos{
		{X: 0, Y: 0},
		{X: width - 1, Y: 0},
		{X: 0, Y: height - 1},
		{X: width - 1, Y: height - 1},
	} {
		id, _ := a.TileIDAt(p)
		product *= int64(id)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "corner product: %d\n", product)

	img, err := mosaic.Assemble(a)
	if err != nil {
		return err
	}
	monsters, roughness := img.FindMonsters(mosaic.SeaMonster())
	log.Info().Stringer("orientation", img.Orientation()).Int("monsters", monsters).Msg("pattern sweep done")
	fmt.Fprintf(cmd.OutOrStdout(), "monsters: %d\n", monsters)
	fmt.Fprintf(cmd.OutOrStdout(), "roughness: %d\n", roughness)

	return nil
}

// gridDims resolves the grid shape from flags, defaulting to the square
// root of the tile count.
func gridDims(tiles int) (w, h int, err error) {
	w, h = flagWidth, flagHeight
	if w == 0 && h == 0 {
		side := int(math.Sqrt(float64(tiles)))
		if side*side != tiles {
			return 0, 0, fmt.Errorf("tessella: %d tiles do not form a square; pass --width and --height", tiles)
		}
		w, h = side, side
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("tessella: --width and --height must both be positive")
	}

	return w, h, nil
}

// newLogger builds a console logger; verbose enables per-step debug events.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// searchHooks wires the solver's hooks to the logger, mirroring the search
// trace: anchors at info, placements and removals at debug.
func searchHooks(log zerolog.Logger) []arrange.Option {
	return []arrange.Option{
		arrange.WithOnAnchor(func(ot arrange.OrientedTile) {
			log.Info().Stringer("anchor", ot).Msg("trying anchor")
		}),
		arrange.WithOnPlace(func(p orient.Pos, ot arrange.OrientedTile) {
			log.Debug().Stringer("pos", p).Stringer("tile", ot).Msg("place")
		}),
		arrange.WithOnRemove(func(p orient.Pos, id tile.ID) {
			log.Debug().Stringer("pos", p).Int64("tile", int64(id)).Msg("remove")
		}),
	}
}
