package chunk

import (
	"chunkgen/pkg/engine/world"
)

const (
	erosionSalt  = 0xe7
	erosionScale = 12
)

// RoomInRoom walls off a smaller room inside the room at idx, leaving space
// tiles of floor between the two walls. The inner room gets a single exit.
// It fails without changes when the room is furnished or too small.
func (c *Chunk) RoomInRoom(idx, space int) bool {
	if space < 1 || c.Rooms[idx].Has(FlagFurnished) {
		return false
	}
	return c.nestRoom(idx, c.Rooms[idx], space)
}

// nestRoom carves a walled room inset by space+1 inside area, which must lie
// within the room at idx. The parent is marked furnished on success.
func (c *Chunk) nestRoom(idx int, area Room, space int) bool {
	if area.Size() < 24+space*space || area.X2-area.X1 < 4+space || area.Y2-area.Y1 < 4+space {
		return false
	}
	parent := c.Room(idx)
	flags := parent.Flags&^(FlagFurnished|FlagCorridor) | FlagNested
	inner := NewRoom(area.X1+space+1, area.Y1+space+1, area.X2-space-1, area.Y2-space-1, parent.Isolation+1, flags)
	if !inner.Valid() {
		return false
	}
	inner.Cluster = parent.Cluster

	switch c.Roll(0, 3) {
	case 0:
		inner.Top = c.Roll(inner.X1, inner.X2)
	case 1:
		inner.Right = c.Roll(inner.Y1, inner.Y2)
	case 2:
		inner.Bottom = c.Roll(inner.X1, inner.X2)
	case 3:
		inner.Left = c.Roll(inner.Y1, inner.Y2)
	}
	c.drawRoom(inner, c.Roll(0, c.Config.Openness) == 0)
	parent.Flags |= FlagFurnished

	newIdx := c.AddRoom(inner)
	c.ErodeRoom(newIdx)
	c.trace("nested room %d in room %d", newIdx, idx)
	if debugAssertions {
		c.mustPass(c.RoomListSelfTest())
	}
	return true
}

// nestCloset walls off area, a corner quadrant of the room at idx too small
// for a room of its own, as a nested room inset by one tile. Its single exit
// faces d, toward the parent's interior. The walls sit on the quadrant edge,
// so the closet is always strictly smaller than the quadrant.
func (c *Chunk) nestCloset(idx int, area Room, d world.Direction) bool {
	parent := c.Rooms[idx]
	flags := parent.Flags&^(FlagFurnished|FlagCorridor) | FlagNested
	inner := NewRoom(area.X1+1, area.Y1+1, area.X2-1, area.Y2-1, parent.Isolation+1, flags)
	if !inner.Valid() {
		return false
	}
	inner.Cluster = parent.Cluster
	lo, hi := inner.Span(d)
	inner.SetExit(d, c.Roll(lo, hi))
	c.drawRoom(inner, c.Roll(0, c.Config.Openness) == 0)

	newIdx := c.AddRoom(inner)
	c.ErodeRoom(newIdx)
	c.trace("nested closet %d in corner of room %d", newIdx, idx)
	return true
}

// ErodeRoom damages the wall ring of the room at idx according to the
// configured brokenness. Corners and exits are left intact. It uses a forked
// seed, so the chunk's main stream is unaffected.
func (c *Chunk) ErodeRoom(idx int) {
	if c.Config.Brokenness <= 0 {
		return
	}
	r := c.Rooms[idx]
	seed := c.Config.Seed.Fork(erosionSalt + uint64(idx))
	erode := func(x, y int) {
		if !c.Wall(x, y) || seed.Roll(0, erosionScale) >= c.Config.Brokenness {
			return
		}
		if seed.Roll(0, 3) == 0 {
			c.Build(x, y, world.TileDebris)
		} else {
			c.Build(x, y, world.TileWallDamaged)
		}
	}
	for x := r.X1; x <= r.X2; x++ {
		if x != r.Top {
			erode(x, r.Y1-1)
		}
		if x != r.Bottom {
			erode(x, r.Y2+1)
		}
	}
	for y := r.Y1; y <= r.Y2; y++ {
		if y != r.Left {
			erode(r.X1-1, y)
		}
		if y != r.Right {
			erode(r.X2+1, y)
		}
	}
}

// RoomCorners carves small rooms into the requested corners of the room at
// idx. Each quadrant is split off at the room midpoint or at the exit line,
// whichever leaves the exit clear, and gets one exit toward the room centre.
// Quadrants smaller than minSize get a nested closet inside the quadrant instead.
// The parent is marked furnished when anything was added.
func (c *Chunk) RoomCorners(idx int, corners Corner, minSize int) bool {
	if minSize < 9 {
		minSize = 9
	}
	r := c.Rooms[idx]
	if r.Has(FlagFurnished) {
		return false
	}

	midx := r.X1 + (r.X2-r.X1)>>1
	midy := r.Y1 + (r.Y2-r.Y1)>>1
	tx, bx := exitOr(r.Top, r.Bottom, midx), exitOr(r.Bottom, r.Top, midx)
	ly, ry := exitOr(r.Left, r.Right, midy), exitOr(r.Right, r.Left, midy)

	side := -1
	if r.Has(FlagNeat) {
		side = c.Roll(0, 1)
	}
	flags := r.Flags&^(FlagFurnished|FlagCorridor) | FlagNested

	quadrants := []struct {
		corner Corner
		area   Room
		first  world.Direction
		second world.Direction
	}{
		{CornerTopLeft, NewRoom(r.X1, r.Y1, min(midx, tx)-2, min(midy, ly)-2, r.Isolation+1, flags), world.Right, world.Bottom},
		{CornerTopRight, NewRoom(max(midx, tx)+2, r.Y1, r.X2, min(midy, ry)-2, r.Isolation+1, flags), world.Left, world.Bottom},
		{CornerBottomLeft, NewRoom(r.X1, max(midy, ly)+2, min(midx, bx)-2, r.Y2, r.Isolation+1, flags), world.Right, world.Top},
		{CornerBottomRight, NewRoom(max(midx, bx)+2, max(midy, ry)+2, r.X2, r.Y2, r.Isolation+1, flags), world.Left, world.Top},
	}

	added := false
	for _, q := range quadrants {
		if corners&q.corner == 0 || !q.area.Valid() {
			continue
		}
		s := side
		if s == -1 {
			s = c.Roll(0, 1)
		}
		d := q.second
		if s == 0 {
			d = q.first
		}
		if q.area.Size() < minSize {
			if c.nestCloset(idx, q.area, d) {
				added = true
			}
			continue
		}
		room := q.area
		room.Cluster = r.Cluster
		lo, hi := room.Span(d)
		room.SetExit(d, c.Roll(lo, hi))
		c.drawRoom(room, c.Roll(0, c.Config.Openness) == 0)
		c.AddRoom(room)
		added = true
	}
	if added {
		c.Rooms[idx].Flags |= FlagFurnished
		c.trace("carved corners %04b of room %d", corners, idx)
	}
	if debugAssertions {
		c.mustPass(c.RoomListSelfTest())
	}
	return added
}

// FilterRoomInRoom decorates rooms present at entry: a third are left alone,
// the rest get a nested room or, failing that, a random set of corner rooms.
func (c *Chunk) FilterRoomInRoom() {
	count := len(c.Rooms)
	for idx := 0; idx < count; idx++ {
		if c.Rooms[idx].Has(FlagFurnished) {
			continue
		}
		if c.Roll(0, 2) == 0 {
			continue
		}
		if c.RoomInRoom(idx, 1) {
			continue
		}
		c.RoomCorners(idx, Corner(c.Roll(1, 15)), c.Roll(9, 16))
	}
}

// exitOr returns v, or alt when v is NoExit, or mid when both are.
func exitOr(v, alt, mid int) int {
	if v != NoExit {
		return v
	}
	if alt != NoExit {
		return alt
	}
	return mid
}
