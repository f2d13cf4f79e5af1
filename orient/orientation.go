// Package orient defines the closed set of square symmetries and their
// edge- and coordinate-transform tables.
package orient

// Orientation is one of the 8 symmetries of a square: four rotations,
// each with an optional horizontal flip applied first.
type Orientation uint8

const (
	// R0 is the identity orientation.
	R0 Orientation = iota
	// R90 rotates a quarter turn: the right edge becomes the top.
	R90
	// R180 rotates a half turn.
	R180
	// R270 rotates three quarter turns: the left edge becomes the top.
	R270
	// R0FlipH mirrors horizontally (left-right).
	R0FlipH
	// R0FlipV mirrors vertically (top-bottom).
	R0FlipV
	// R90FlipH rotates a quarter turn then mirrors horizontally.
	R90FlipH
	// R90FlipV rotates a quarter turn then mirrors vertically.
	R90FlipV

	// Count is the number of distinct orientations.
	Count = 8
)

// All returns every orientation in canonical order.
// Callers own the returned slice.
func All() []Orientation {
	return []Orientation{R0, R90, R180, R270, R0FlipH, R0FlipV, R90FlipH, R90FlipV}
}

var orientationNames = [Count]string{
	"R0", "R90", "R180", "R270", "R0FlipH", "R0FlipV", "R90FlipH", "R90FlipV",
}

// String returns the canonical name of o, or "R?" for out-of-range values.
func (o Orientation) String() string {
	if int(o) >= len(orientationNames) {
		return "R?"
	}

	return orientationNames[o]
}

// Swapped reports whether o exchanges width and height (the quarter-turn family).
func (o Orientation) Swapped() bool {
	return o == R90 || o == R270 || o == R90FlipH || o == R90FlipV
}

// Dims returns the oriented (logical) width and height for a grid whose
// backing storage is sw×sh. Quarter-turn orientations swap the two.
func (o Orientation) Dims(sw, sh int) (w, h int) {
	if o.Swapped() {
		return sh, sw
	}

	return sw, sh
}

// Inverse returns the orientation that undoes o: applying o's coordinate
// transform and then Inverse(o)'s yields the original coordinate.
// All orientations are involutions except the two pure quarter turns.
func (o Orientation) Inverse() Orientation {
	switch o {
	case R90:
		return R270
	case R270:
		return R90
	default:
		return o
	}
}

// Side names one of the four sides of a square tile or image.
type Side uint8

const (
	// Top is the upper side, read left-to-right.
	Top Side = iota
	// Bottom is the lower side, read left-to-right.
	Bottom
	// Left is the left side, read top-to-bottom.
	Left
	// Right is the right side, read top-to-bottom.
	Right
)

var sideNames = [4]string{"Top", "Bottom", "Left", "Right"}

// String returns the canonical name of s, or "Side?" for out-of-range values.
func (s Side) String() string {
	if int(s) >= len(sideNames) {
		return "Side?"
	}

	return sideNames[s]
}

// EdgeRef tells which canonical edge appears on a queried side once an
// orientation is applied, and whether its bits must be read reversed.
type EdgeRef struct {
	Side     Side
	Reversed bool
}

// edgeTable[o][s] gives the canonical edge visible on side s under
// orientation o. The whole solver's correctness rests on this table;
// it is checked against known fixtures in the tests.
var edgeTable = [Count][4]EdgeRef{
	R0: {
		Top:    {Top, false},
		Bottom: {Bottom, false},
		Left:   {Left, false},
		Right:  {Right, false},
	},
	R90: {
		Top:    {Right, false},
		Bottom: {Left, false},
		Left:   {Top, true},
		Right:  {Bottom, true},
	},
	R180: {
		Top:    {Bottom, true},
		Bottom: {Top, true},
		Left:   {Right, true},
		Right:  {Left, true},
	},
	R270: {
		Top:    {Left, true},
		Bottom: {Right, true},
		Left:   {Bottom, false},
		Right:  {Top, false},
	},
	R0FlipH: {
		Top:    {Top, true},
		Bottom: {Bottom, true},
		Left:   {Right, false},
		Right:  {Left, false},
	},
	R0FlipV: {
		Top:    {Bottom, false},
		Bottom: {Top, false},
		Left:   {Left, true},
		Right:  {Right, true},
	},
	R90FlipH: {
		Top:    {Right, true},
		Bottom: {Left, true},
		Left:   {Bottom, true},
		Right:  {Top, true},
	},
	R90FlipV: {
		Top:    {Left, false},
		Bottom: {Right, false},
		Left:   {Top, false},
		Right:  {Bottom, false},
	},
}

// EdgeOn returns which canonical edge (and in which reading direction)
// occupies side s once orientation o is applied. Complexity: O(1).
func (o Orientation) EdgeOn(s Side) EdgeRef {
	return edgeTable[o][s]
}

// Apply maps a logical coordinate (x,y) under orientation o to the backing
// storage coordinates. w and h are the *logical* (oriented) dimensions, as
// returned by Dims. Complexity: O(1).
func (o Orientation) Apply(x, y, w, h int) (sx, sy int) {
	rx, ry := w-1-x, h-1-y
	switch o {
	case R90:
		return ry, x
	case R180:
		return rx, ry
	case R270:
		return y, rx
	case R0FlipH:
		return rx, y
	case R0FlipV:
		return x, ry
	case R90FlipH:
		return ry, rx
	case R90FlipV:
		return y, x
	default: // R0
		return x, y
	}
}
