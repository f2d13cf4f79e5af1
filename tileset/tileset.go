// Package tileset turns tile-record text into parsed tiles.
package tileset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tessella/tile"
)

// Sentinel errors for tileset parsing.
var (
	// ErrBadHeader indicates a record that does not start with "Tile <id>:".
	ErrBadHeader = errors.New("tileset: malformed tile header")
	// ErrEmptyInput indicates input with no tile records.
	ErrEmptyInput = errors.New("tileset: no tile records in input")
)

const (
	headerPrefix = "Tile "
	headerSuffix = ":"
)

// Parse reads blank-line-separated tile records from r and returns the
// parsed tiles in input order. Complexity: O(input size).
func Parse(r io.Reader) ([]*tile.Tile, error) {
	var (
		tiles []*tile.Tile
		id    tile.ID
		rows  []string
		open  bool
	)

	flush := func() error {
		if !open {
			return nil
		}
		t, err := tile.New(id, rows)
		if err != nil {
			return fmt.Errorf("tileset: tile %d: %w", id, err)
		}
		tiles = append(tiles, t)
		id, rows, open = 0, nil, false

		return nil
	}

	sc := bufio.NewScanner(r)
	var line string
	for sc.Scan() {
		line = strings.TrimRight(sc.Text(), " \t\r")

		switch {
		// Blank line closes the current record.
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}

		// Header opens a new record.
		case !open:
			hid, err := parseHeader(line)
			if err != nil {
				return nil, err
			}
			id, open = hid, true

		// Anything else is a grid row of the open record.
		default:
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tileset: read: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, ErrEmptyInput
	}

	return tiles, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]*tile.Tile, error) {
	return Parse(strings.NewReader(s))
}

// parseHeader extracts the id from a "Tile <id>:" line.
func parseHeader(line string) (tile.ID, error) {
	if !strings.HasPrefix(line, headerPrefix) || !strings.HasSuffix(line, headerSuffix) {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(line, headerPrefix), headerSuffix)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}

	return tile.ID(n), nil
}
