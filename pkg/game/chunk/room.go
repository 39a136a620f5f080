package chunk

import (
	"fmt"

	"chunkgen/pkg/engine/world"
)

// RoomFlags describe how a room was made and what has been done to it.
type RoomFlags uint8

const (
	// FlagNested marks a room carved inside another room's bounds.
	FlagNested RoomFlags = 1 << iota
	// FlagNeat rooms keep aligned, symmetric decoration.
	FlagNeat
	// FlagCorridor marks a one-tile-wide connection room.
	FlagCorridor
	// FlagFurnished rooms have already been decorated or populated.
	FlagFurnished
)

// Corner selects quadrants of a room for RoomCorners.
type Corner uint8

const (
	CornerTopLeft Corner = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	AllCorners = CornerTopLeft | CornerTopRight | CornerBottomLeft | CornerBottomRight
)

// NoExit marks a side without an exit.
const NoExit = -1

// Room is an axis-aligned open area of a chunk. Exits are coordinates along
// the side they belong to: columns for top and bottom, rows for left and right.
type Room struct {
	X1, Y1, X2, Y2 int

	Top, Bottom, Left, Right int

	Isolation int
	Flags     RoomFlags
	Cluster   int
}

// NewRoom creates a room without exits.
func NewRoom(x1, y1, x2, y2, isolation int, flags RoomFlags) Room {
	return Room{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Top: NoExit, Bottom: NoExit, Left: NoExit, Right: NoExit,
		Isolation: isolation,
		Flags:     flags,
	}
}

// Width returns the number of columns covered by the room
func (r Room) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered by the room
func (r Room) Height() int { return r.Y2 - r.Y1 + 1 }

// Size returns the room area in tiles
func (r Room) Size() int { return r.Width() * r.Height() }

// Valid reports whether the bounds are non-negative and ordered.
func (r Room) Valid() bool {
	return r.X1 >= 0 && r.Y1 >= 0 && r.X1 <= r.X2 && r.Y1 <= r.Y2
}

// Has reports whether all bits of f are set.
func (r Room) Has(f RoomFlags) bool { return r.Flags&f == f }

// Center returns the middle tile of the room
func (r Room) Center() (x, y int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains reports whether x, y lies inside the room bounds.
func (r Room) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Overlaps reports whether the two bounding boxes share a tile.
func (r Room) Overlaps(o Room) bool {
	return rangeOverlap(r.X1, r.X2, o.X1, o.X2) && rangeOverlap(r.Y1, r.Y2, o.Y1, o.Y2)
}

// Encloses reports whether o lies completely inside r.
func (r Room) Encloses(o Room) bool {
	return o.X1 >= r.X1 && o.X2 <= r.X2 && o.Y1 >= r.Y1 && o.Y2 <= r.Y2
}

// SameBounds reports whether both rooms cover exactly the same rectangle.
func (r Room) SameBounds(o Room) bool {
	return r.X1 == o.X1 && r.Y1 == o.Y1 && r.X2 == o.X2 && r.Y2 == o.Y2
}

// Exit returns the exit coordinate on side d, or NoExit.
func (r Room) Exit(d world.Direction) int {
	switch d {
	case world.Top:
		return r.Top
	case world.Bottom:
		return r.Bottom
	case world.Left:
		return r.Left
	case world.Right:
		return r.Right
	}
	return NoExit
}

// SetExit sets the exit coordinate on side d.
func (r *Room) SetExit(d world.Direction, v int) {
	switch d {
	case world.Top:
		r.Top = v
	case world.Bottom:
		r.Bottom = v
	case world.Left:
		r.Left = v
	case world.Right:
		r.Right = v
	}
}

// Span returns the inclusive range an exit on side d may take.
func (r Room) Span(d world.Direction) (lo, hi int) {
	if d.Horizontal() {
		return r.Y1, r.Y2
	}
	return r.X1, r.X2
}

// ExitCell returns the tile just outside the room where the exit on side d lies.
func (r Room) ExitCell(d world.Direction) (x, y int, ok bool) {
	v := r.Exit(d)
	if v == NoExit {
		return 0, 0, false
	}
	switch d {
	case world.Top:
		return v, r.Y1 - 1, true
	case world.Bottom:
		return v, r.Y2 + 1, true
	case world.Left:
		return r.X1 - 1, v, true
	default:
		return r.X2 + 1, v, true
	}
}

// InsideExitCell returns the room tile adjacent to the exit on side d.
func (r Room) InsideExitCell(d world.Direction) (x, y int, ok bool) {
	x, y, ok = r.ExitCell(d)
	if !ok {
		return 0, 0, false
	}
	dx, dy := d.Delta()
	return x - dx, y - dy, true
}

// SelfTest checks the room's own invariants.
func (r Room) SelfTest() error {
	if !r.Valid() {
		return fmt.Errorf("room %v: invalid bounds", r)
	}
	if r.Isolation < 0 {
		return fmt.Errorf("room %v: negative isolation %d", r, r.Isolation)
	}
	for _, d := range world.AllDirections() {
		v := r.Exit(d)
		if v == NoExit {
			continue
		}
		lo, hi := r.Span(d)
		if v < lo || v > hi {
			return fmt.Errorf("room %v: %s exit %d outside %d..%d", r, d, v, lo, hi)
		}
	}
	return nil
}

// String returns a compact description of the room
func (r Room) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

func rangeOverlap(a1, a2, b1, b2 int) bool {
	return a1 <= b2 && b1 <= a2
}
