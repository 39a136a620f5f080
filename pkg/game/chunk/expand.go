package chunk

import (
	"chunkgen/pkg/engine/world"
)

// Expand tries to bud a new room off every side without an exit of every
// room that exists when it is called. Rooms added during the pass are not
// visited again, so each call grows the layout by at most one generation.
func (c *Chunk) Expand(min, max int) {
	count := len(c.Rooms)
	for idx := 0; idx < count; idx++ {
		rc := c.Rooms[idx]

		ndir := c.Roll(rc.Y1, rc.Y2)
		c.expandSide(idx, world.Left, ndir, NewRoom(rc.X1-4, ndir-1, rc.X1-2, ndir+1, rc.Isolation+1, 0), min, max)

		ndir = c.Roll(rc.Y1, rc.Y2)
		c.expandSide(idx, world.Right, ndir, NewRoom(rc.X2+2, ndir-1, rc.X2+4, ndir+1, rc.Isolation+1, 0), min, max)

		ndir = c.Roll(rc.X1, rc.X2)
		c.expandSide(idx, world.Top, ndir, NewRoom(ndir-1, rc.Y1-4, ndir+1, rc.Y1-2, rc.Isolation+1, 0), min, max)

		ndir = c.Roll(rc.X1, rc.X2)
		c.expandSide(idx, world.Bottom, ndir, NewRoom(ndir-1, rc.Y2+2, ndir+1, rc.Y2+4, rc.Isolation+1, 0), min, max)
	}
	if debugAssertions {
		c.mustPass(c.Validate())
	}
}

// expandSide builds candidate off side d of the room at idx, joined through
// the parent's wall at coordinate at.
func (c *Chunk) expandSide(idx int, d world.Direction, at int, candidate Room, min, max int) {
	parent := c.Room(idx)
	if parent.Exit(d) != NoExit || !candidate.Valid() || !c.CanBuild(candidate) {
		return
	}
	// Corner rooms may wall off the parent tile behind the exit.
	trial := *parent
	trial.SetExit(d, at)
	if ix, iy, _ := trial.InsideExitCell(d); c.Solid(ix, iy) {
		return
	}
	if parent.Has(FlagNeat) {
		aligned := candidate
		if d.Horizontal() {
			aligned.Y1, aligned.Y2 = parent.Y1, parent.Y2
		} else {
			aligned.X1, aligned.X2 = parent.X1, parent.X2
		}
		if c.CanBuild(aligned) {
			candidate = aligned
			candidate.Flags |= FlagNeat
		}
	}
	candidate.Cluster = parent.Cluster

	parent.SetExit(d, at)
	x, y, _ := parent.ExitCell(d)
	c.Dig(x, y)
	if c.Roll(0, c.Config.Openness*3) == 0 {
		c.Build(x, y, world.TileDoor)
	}

	c.digRoom(candidate)
	candidate.SetExit(d.Opposite(), at)
	c.growRandomly(&candidate, min, max)
	if debugAssertions {
		c.mustPass(candidate.SelfTest())
	}
	newIdx := c.AddRoom(candidate)
	if c.session.Debugging() {
		c.DumpRoom(c.session.Writer(), newIdx)
	}
}
