package mosaic

import "github.com/katalvlaran/tessella/orient"

// seaMonsterRows is the classic pattern hunted in assembled mosaics.
// Filled cells are required; every other cell is "don't care".
var seaMonsterRows = []string{
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
}

// SeaMonster returns a fresh copy of the built-in sea monster pattern.
func SeaMonster() *Image {
	m, err := New(seaMonsterRows)
	if err != nil {
		// The built-in rows are rectangular and non-empty.
		panic(err)
	}

	return m
}

// MatchAt reports whether every Filled cell of pat aligns with a Filled
// image cell when pat's top-left corner sits at origin. Offsets that would
// run past the image bounds never match. Complexity: O(pw×ph).
func (m *Image) MatchAt(origin orient.Pos, pat *Image) bool {
	pw, ph := pat.Width(), pat.Height()
	if origin.X < 0 || origin.Y < 0 || origin.X+pw > m.Width() || origin.Y+ph > m.Height() {
		return false
	}
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			p := orient.Pos{X: x, Y: y}
			if pat.At(p) == Filled && m.At(p.Add(origin)) != Filled {
				return false
			}
		}
	}

	return true
}

// markAt overwrites with Marked every image cell covered by a Filled cell
// of pat anchored at origin. Re-marking an already Marked cell is a no-op,
// so overlapping matches are idempotent.
func (m *Image) markAt(origin orient.Pos, pat *Image) {
	for y := 0; y < pat.Height(); y++ {
		for x := 0; x < pat.Width(); x++ {
			p := orient.Pos{X: x, Y: y}
			if pat.At(p) == Filled {
				m.set(p.Add(origin), Marked)
			}
		}
	}
}

// FindPattern slides pat over every valid top-left offset of the image
// under its current orientation and returns the number of matches. All
// match origins are collected before any cell is marked, so overlapping
// matches are detected independently of each other.
// Complexity: O(W×H×pw×ph).
func (m *Image) FindPattern(pat *Image) int {
	var origins []orient.Pos
	for y := 0; y+pat.Height() <= m.Height(); y++ {
		for x := 0; x+pat.Width() <= m.Width(); x++ {
			p := orient.Pos{X: x, Y: y}
			if m.MatchAt(p, pat) {
				origins = append(origins, p)
			}
		}
	}
	for _, p := range origins {
		m.markAt(p, pat)
	}

	return len(origins)
}

// FindMonsters hunts pat through the 8 image orientations in turn and stops
// at the first orientation yielding at least one match (exactly one is
// expected to). Matched cells are marked in place. It returns the match
// count and the roughness: how many Filled cells remain unmarked.
// Complexity: O(8×W×H×pw×ph).
func (m *Image) FindMonsters(pat *Image) (matches, roughness int) {
	for _, o := range orient.All() {
		m.SetOrientation(o)
		if matches = m.FindPattern(pat); matches > 0 {
			break
		}
	}

	return matches, m.Count(Filled)
}
