package world

// Direction names one side of a chunk or room
type Direction int

// Direction constants
const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Top, Right, Bottom, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is one of the four sides
func (d Direction) IsValid() bool {
	return d >= Top && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Horizontal returns true for left and right, whose exits are row coordinates
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}
