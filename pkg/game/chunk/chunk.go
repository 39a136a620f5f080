// Package chunk generates the tile layout of one chunk of a dungeon level.
//
// A chunk is a power-of-two grid of tiles plus the rooms carved into it.
// Generation is a sequence of filters run on the same *Chunk: exits,
// connectivity, growth and expansion, decoration, and doors. Every filter
// draws from the chunk's seed, so the same Config always yields the same chunk.
//
// Rooms live in a slice and are addressed by index. A *Room obtained from
// Room is only valid until the next room is added.
package chunk

import (
	"fmt"

	"chunkgen/pkg/engine/world"
	"chunkgen/pkg/game/state"
)

// Chunk is one rectangular piece of a level.
type Chunk struct {
	*world.Grid

	Config Config

	// Border openings, or NoExit.
	Top, Bottom, Left, Right int

	Rooms []Room

	session *state.Session
}

// New creates an all-rock chunk for cfg. session may be nil.
func New(cfg Config, session *state.Session) (*Chunk, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := world.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Chunk{
		Grid:    g,
		Config:  cfg,
		Top:     NoExit,
		Bottom:  NoExit,
		Left:    NoExit,
		Right:   NoExit,
		session: session,
	}, nil
}

// Session returns the generation session the chunk was created with.
func (c *Chunk) Session() *state.Session {
	return c.session
}

// Roll draws from the chunk's main seed stream.
func (c *Chunk) Roll(low, high int) int {
	return c.Config.Seed.Roll(low, high)
}

// Exit returns the border opening on side d, or NoExit.
func (c *Chunk) Exit(d world.Direction) int {
	switch d {
	case world.Top:
		return c.Top
	case world.Bottom:
		return c.Bottom
	case world.Left:
		return c.Left
	case world.Right:
		return c.Right
	}
	return NoExit
}

func (c *Chunk) setExit(d world.Direction, v int) {
	switch d {
	case world.Top:
		c.Top = v
	case world.Bottom:
		c.Bottom = v
	case world.Left:
		c.Left = v
	case world.Right:
		c.Right = v
	}
}

// ExitCell returns the border tile of the opening on side d.
func (c *Chunk) ExitCell(d world.Direction) (x, y int, ok bool) {
	v := c.Exit(d)
	if v == NoExit {
		return 0, 0, false
	}
	switch d {
	case world.Top:
		return v, 0, true
	case world.Bottom:
		return v, c.Height() - 1, true
	case world.Left:
		return 0, v, true
	default:
		return c.Width() - 1, v, true
	}
}

// Room returns a pointer to the room at idx. It is invalidated by AddRoom.
func (c *Chunk) Room(idx int) *Room {
	return &c.Rooms[idx]
}

// AddRoom appends r and returns its index.
func (c *Chunk) AddRoom(r Room) int {
	c.Rooms = append(c.Rooms, r)
	return len(c.Rooms) - 1
}

// CanBuild reports whether r fits strictly inside the border with a ring of
// solid tiles all around it.
func (c *Chunk) CanBuild(r Room) bool {
	if !r.Valid() {
		return false
	}
	if r.X1 < 1 || r.Y1 < 1 || r.X2 >= c.Width()-1 || r.Y2 >= c.Height()-1 {
		return false
	}
	for y := r.Y1 - 1; y <= r.Y2+1; y++ {
		for x := r.X1 - 1; x <= r.X2+1; x++ {
			if !c.Solid(x, y) {
				return false
			}
		}
	}
	return true
}

// digRoom opens every tile inside r.
func (c *Chunk) digRoom(r Room) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			c.Dig(x, y)
		}
	}
}

// drawRoom walls the ring around r and opens its exits, as doors when door is set.
func (c *Chunk) drawRoom(r Room, door bool) {
	for x := r.X1 - 1; x <= r.X2+1; x++ {
		c.Build(x, r.Y1-1, world.TileWall)
		c.Build(x, r.Y2+1, world.TileWall)
	}
	for y := r.Y1; y <= r.Y2; y++ {
		c.Build(r.X1-1, y, world.TileWall)
		c.Build(r.X2+1, y, world.TileWall)
	}
	t := world.TileEmpty
	if door {
		t = world.TileDoor
	}
	for _, d := range world.AllDirections() {
		if x, y, ok := r.ExitCell(d); ok {
			c.Build(x, y, t)
		}
	}
}

// trace records a generation step in the session log.
func (c *Chunk) trace(format string, args ...any) {
	c.session.AddMessage("chunk %d,%d: %s", c.Config.X, c.Config.Y, fmt.Sprintf(format, args...))
}
