package tile

import (
	"math/bits"
	"strings"
)

// EdgePattern is a fixed-width bit pattern describing one tile side.
// Bit EdgeBits-1 is the first cell in the side's canonical reading
// direction; bit 0 is the last. Equality is exact bit equality.
type EdgePattern uint16

// patternMask keeps patterns inside their EdgeBits-wide domain.
const patternMask EdgePattern = 1<<EdgeBits - 1

// Reversed returns p read in the opposite direction. It is a pure per-call
// computation on the representable 10-bit domain and an involution:
// p.Reversed().Reversed() == p. Complexity: O(1).
func (p EdgePattern) Reversed() EdgePattern {
	return EdgePattern(bits.Reverse16(uint16(p&patternMask)) >> (16 - EdgeBits))
}

// String renders p as EdgeBits cells, '#' for set bits and '.' for clear,
// most significant bit first.
func (p EdgePattern) String() string {
	var sb strings.Builder
	sb.Grow(EdgeBits)
	for bit := EdgeBits - 1; bit >= 0; bit-- {
		if p&(1<<bit) != 0 {
			sb.WriteByte(Filled)
		} else {
			sb.WriteByte(Empty)
		}
	}

	return sb.String()
}
