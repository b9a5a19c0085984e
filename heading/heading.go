// Package heading defines the ant's facing direction and the fixed
// position deltas each heading produces.
package heading

// Heading is the ant's facing direction. The index order N,E,S,W is part
// of the external contract: transition-table rows are keyed by this index.
type Heading int

const (
	N Heading = iota
	E
	S
	W
)

// NumHeadings is the number of distinct headings, and the row width of a
// transition table entry.
const NumHeadings = 4

func (h Heading) String() string {
	switch h {
	case N:
		return "N"
	case E:
		return "E"
	case S:
		return "S"
	case W:
		return "W"
	default:
		return "?"
	}
}

// Delta is the fixed (dx, dy) a heading moves the ant by in one step.
type Delta struct {
	DX, DY int
}

var deltas = [NumHeadings]Delta{
	N: {DX: 0, DY: 1},
	E: {DX: 1, DY: 0},
	S: {DX: 0, DY: -1},
	W: {DX: -1, DY: 0},
}

// Delta returns the position delta for this heading.
func (h Heading) Delta() Delta {
	return deltas[h]
}

// FromByte parses one of 'N','E','S','W' into a Heading. ok is false for
// any other byte.
func FromByte(b byte) (h Heading, ok bool) {
	switch b {
	case 'N':
		return N, true
	case 'E':
		return E, true
	case 'S':
		return S, true
	case 'W':
		return W, true
	default:
		return 0, false
	}
}
