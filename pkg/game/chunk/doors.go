package chunk

import (
	"chunkgen/pkg/engine/world"
)

// neighbourSide reports on which side of a the room b lies when the two
// share a single wall and overlap along it.
func neighbourSide(a, b Room) (world.Direction, bool) {
	switch {
	case a.X2+2 == b.X1 && rangeOverlap(a.Y1, a.Y2, b.Y1, b.Y2):
		return world.Right, true
	case a.X1-2 == b.X2 && rangeOverlap(a.Y1, a.Y2, b.Y1, b.Y2):
		return world.Left, true
	case a.Y2+2 == b.Y1 && rangeOverlap(a.X1, a.X2, b.X1, b.X2):
		return world.Bottom, true
	case a.Y1-2 == b.Y2 && rangeOverlap(a.X1, a.X2, b.X1, b.X2):
		return world.Top, true
	}
	return 0, false
}

// OneWayDoors opens one-way passages from deeply isolated rooms into less
// isolated neighbours, so players are not forced to backtrack.
func (c *Chunk) OneWayDoors(threshold int) int {
	placed := c.joinNeighbours(func(a, b Room) bool {
		return a.Isolation > threshold && a.Isolation-threshold > b.Isolation
	}, world.OneWayTile)
	if placed > 0 {
		c.trace("placed %d one-way doors", placed)
	}
	return placed
}

// ClusterDoors opens plain doors between neighbouring rooms that grew from
// different initial rooms, once the source room is isolated enough.
func (c *Chunk) ClusterDoors(threshold int) int {
	placed := c.joinNeighbours(func(a, b Room) bool {
		return a.Isolation > threshold && a.Cluster != b.Cluster
	}, func(world.Direction) world.Tile { return world.TileDoor })
	if placed > 0 {
		c.trace("placed %d cluster doors", placed)
	}
	return placed
}

// joinNeighbours opens the shared wall of every ordered pair of neighbouring
// rooms accepted by want, when neither room has an exit on that wall yet.
func (c *Chunk) joinNeighbours(want func(a, b Room) bool, tile func(world.Direction) world.Tile) int {
	placed := 0
	for i := range c.Rooms {
		for j := range c.Rooms {
			if i == j {
				continue
			}
			a, b := &c.Rooms[i], &c.Rooms[j]
			d, ok := neighbourSide(*a, *b)
			if !ok || !want(*a, *b) {
				continue
			}
			if a.Exit(d) != NoExit || b.Exit(d.Opposite()) != NoExit {
				continue
			}
			var at int
			if d.Horizontal() {
				at = c.Roll(max(a.Y1, b.Y1), min(a.Y2, b.Y2))
			} else {
				at = c.Roll(max(a.X1, b.X1), min(a.X2, b.X2))
			}
			wall := *a
			wall.SetExit(d, at)
			x, y, _ := wall.ExitCell(d)
			dx, dy := d.Delta()
			if !c.Wall(x, y) || c.Solid(x-dx, y-dy) || c.Solid(x+dx, y+dy) {
				continue
			}
			// A nested room may back either side of the shared wall.
			if c.ownerAt(x-dx, y-dy) != i || c.ownerAt(x+dx, y+dy) != j {
				continue
			}
			a.SetExit(d, at)
			b.SetExit(d.Opposite(), at)
			c.Build(x, y, tile(d))
			placed++
		}
	}
	if debugAssertions {
		c.mustPass(c.RoomListSelfTest())
	}
	return placed
}

// ownerAt returns the index of the smallest room containing x, y, or -1.
// Nested rooms are smaller than their parents, so they win.
func (c *Chunk) ownerAt(x, y int) int {
	best := -1
	for i, r := range c.Rooms {
		if r.Contains(x, y) && (best == -1 || r.Size() < c.Rooms[best].Size()) {
			best = i
		}
	}
	return best
}
