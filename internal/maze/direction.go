package maze

// Direction is a requested one-cell move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions is the canonical ordering used to map sampled outcomes to moves:
// outcome k selects Directions[k mod 4].
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (row, col) offset of one step in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the one-letter label (U, D, L, R).
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "U"
	case DirDown:
		return "D"
	case DirLeft:
		return "L"
	case DirRight:
		return "R"
	default:
		return "?"
	}
}

// Name returns the lowercase direction name.
func (d Direction) Name() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses a one-letter label or a direction name.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "U", "u", "up":
		return DirUp, true
	case "D", "d", "down":
		return DirDown, true
	case "L", "l", "left":
		return DirLeft, true
	case "R", "r", "right":
		return DirRight, true
	}
	return 0, false
}
