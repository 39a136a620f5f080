package chunk

import (
	"chunkgen/pkg/engine/world"
)

var shrinkOrder = [4]world.Direction{world.Left, world.Right, world.Top, world.Bottom}

// The tryGrow functions need two solid lines beyond the side. Only the exit
// tile itself may be open, so a room never grows into the room it leads to.

func (c *Chunk) tryGrowLeft(r *Room) bool {
	if r.Y1 == 0 || r.Y2 == c.Height()-1 || r.X1 <= 1 {
		return false
	}
	for i := r.Y1 - 1; i <= r.Y2+1; i++ {
		if !c.Solid(r.X1-2, i) || (i != r.Left && !c.Solid(r.X1-1, i)) {
			return false
		}
	}
	for i := r.Y1; i <= r.Y2; i++ {
		c.Dig(r.X1-1, i)
	}
	r.X1--
	return true
}

func (c *Chunk) tryGrowRight(r *Room) bool {
	if r.Y1 == 0 || r.Y2 >= c.Height()-1 || r.X2 >= c.Width()-2 {
		return false
	}
	for i := r.Y1 - 1; i <= r.Y2+1; i++ {
		if !c.Solid(r.X2+2, i) || (i != r.Right && !c.Solid(r.X2+1, i)) {
			return false
		}
	}
	for i := r.Y1; i <= r.Y2; i++ {
		c.Dig(r.X2+1, i)
	}
	r.X2++
	return true
}

func (c *Chunk) tryGrowTop(r *Room) bool {
	if r.X1 == 0 || r.X2 >= c.Width()-1 || r.Y1 <= 1 {
		return false
	}
	for i := r.X1 - 1; i <= r.X2+1; i++ {
		if !c.Solid(i, r.Y1-2) || (i != r.Top && !c.Solid(i, r.Y1-1)) {
			return false
		}
	}
	for i := r.X1; i <= r.X2; i++ {
		c.Dig(i, r.Y1-1)
	}
	r.Y1--
	return true
}

func (c *Chunk) tryGrowBottom(r *Room) bool {
	if r.X1 == 0 || r.X2 >= c.Width()-1 || r.Y2 >= c.Height()-2 {
		return false
	}
	for i := r.X1 - 1; i <= r.X2+1; i++ {
		if !c.Solid(i, r.Y2+2) || (i != r.Bottom && !c.Solid(i, r.Y2+1)) {
			return false
		}
	}
	for i := r.X1; i <= r.X2; i++ {
		c.Dig(i, r.Y2+1)
	}
	r.Y2++
	return true
}

func (c *Chunk) grow(r *Room) bool {
	res := c.tryGrowLeft(r)
	res = c.tryGrowRight(r) || res
	res = c.tryGrowTop(r) || res
	return c.tryGrowBottom(r) || res
}

// Grow expands the room at idx by one tile on every side that has two rows of
// solid ground beyond it. It reports whether any side grew.
func (c *Chunk) Grow(idx int) bool {
	return c.grow(c.Room(idx))
}

// GrowRandomly grows the room at idx for a rolled number of iterations in
// [min, max] and then applies up to Chaos shrink passes.
func (c *Chunk) GrowRandomly(idx, min, max int) {
	c.growRandomly(c.Room(idx), min, max)
}

func (c *Chunk) growRandomly(r *Room, min, max int) {
	iter := c.Roll(min, max)
	for i := 0; i < iter; i++ {
		res := false
		switch c.Roll(0, 4) {
		case 0:
			res = c.tryGrowLeft(r)
			res = c.tryGrowTop(r) || res
			if !res {
				res = c.tryGrowRight(r)
			}
			if !res {
				res = c.tryGrowBottom(r)
			}
		case 1:
			res = c.tryGrowRight(r)
			res = c.tryGrowTop(r) || res
			if !res {
				res = c.tryGrowBottom(r)
			}
			if !res {
				res = c.tryGrowLeft(r)
			}
		case 2:
			res = c.tryGrowTop(r)
			res = c.tryGrowLeft(r) || res
			if !res {
				res = c.tryGrowBottom(r)
			}
			if !res {
				res = c.tryGrowRight(r)
			}
		case 3:
			res = c.tryGrowBottom(r)
			res = c.tryGrowRight(r) || res
			if !res {
				res = c.tryGrowLeft(r)
			}
			if !res {
				res = c.tryGrowTop(r)
			}
		case 4:
			res = c.tryGrowTop(r)
			res = c.tryGrowLeft(r) || res
			res = c.tryGrowRight(r) || res
			res = c.tryGrowBottom(r) || res
		}
		if !res {
			break
		}
	}

	passes := c.Roll(0, c.Config.Chaos)
	for i := 0; i < passes; i++ {
		side := shrinkOrder[c.Roll(0, 3)]
		if r.Size() > min*min {
			c.shrink(r, side)
		}
	}
}

// Shrink pulls side d of the room at idx in by two tiles, leaving a
// passage from the old exit to a single new gap. It needs an exit on d.
func (c *Chunk) Shrink(idx int, d world.Direction) bool {
	return c.shrink(c.Room(idx), d)
}

// ShrinkTop shrinks the top side of the room at idx
func (c *Chunk) ShrinkTop(idx int) bool { return c.Shrink(idx, world.Top) }

// ShrinkBottom shrinks the bottom side of the room at idx
func (c *Chunk) ShrinkBottom(idx int) bool { return c.Shrink(idx, world.Bottom) }

// ShrinkLeft shrinks the left side of the room at idx
func (c *Chunk) ShrinkLeft(idx int) bool { return c.Shrink(idx, world.Left) }

// ShrinkRight shrinks the right side of the room at idx
func (c *Chunk) ShrinkRight(idx int) bool { return c.Shrink(idx, world.Right) }

func (c *Chunk) shrink(r *Room, d world.Direction) bool {
	var ok bool
	switch d {
	case world.Top:
		ok = c.shrinkTop(r)
	case world.Bottom:
		ok = c.shrinkBottom(r)
	case world.Left:
		ok = c.shrinkLeft(r)
	case world.Right:
		ok = c.shrinkRight(r)
	}
	if ok && debugAssertions {
		c.mustPass(r.SelfTest())
	}
	return ok
}

// shrinkable reports whether r has enough extent on both axes to lose two tiles.
func shrinkable(r *Room) bool {
	return r.Y2-r.Y1 >= 3 && r.X2-r.X1 >= 3
}

func (c *Chunk) shrinkTop(r *Room) bool {
	if r.Top == NoExit || !shrinkable(r) ||
		(r.Left != NoExit && r.Left <= r.Y1+2) || (r.Right != NoExit && r.Right <= r.Y1+2) {
		return false
	}
	exit := c.Roll(r.X1, r.X2)
	for i := r.X1; i < min(exit, r.Top); i++ {
		c.Build(i, r.Y1, world.TileWall)
	}
	for i := max(r.Top, exit) + 1; i <= r.X2; i++ {
		c.Build(i, r.Y1, world.TileWall)
	}
	for i := r.X1; i <= r.X2; i++ {
		if i != exit {
			c.Build(i, r.Y1+1, world.TileWall)
		}
	}
	r.Y1 += 2
	r.Top = exit
	return true
}

func (c *Chunk) shrinkBottom(r *Room) bool {
	if r.Bottom == NoExit || !shrinkable(r) ||
		(r.Left != NoExit && r.Left >= r.Y2-2) || (r.Right != NoExit && r.Right >= r.Y2-2) {
		return false
	}
	exit := c.Roll(r.X1, r.X2)
	for i := r.X1; i < min(exit, r.Bottom); i++ {
		c.Build(i, r.Y2, world.TileWall)
	}
	for i := max(r.Bottom, exit) + 1; i <= r.X2; i++ {
		c.Build(i, r.Y2, world.TileWall)
	}
	for i := r.X1; i <= r.X2; i++ {
		if i != exit {
			c.Build(i, r.Y2-1, world.TileWall)
		}
	}
	r.Y2 -= 2
	r.Bottom = exit
	return true
}

func (c *Chunk) shrinkLeft(r *Room) bool {
	if r.Left == NoExit || !shrinkable(r) ||
		(r.Top != NoExit && r.Top <= r.X1+2) || (r.Bottom != NoExit && r.Bottom <= r.X1+2) {
		return false
	}
	exit := c.Roll(r.Y1, r.Y2)
	for i := r.Y1; i < min(exit, r.Left); i++ {
		c.Build(r.X1, i, world.TileWall)
	}
	for i := max(r.Left, exit) + 1; i <= r.Y2; i++ {
		c.Build(r.X1, i, world.TileWall)
	}
	for i := r.Y1; i <= r.Y2; i++ {
		if i != exit {
			c.Build(r.X1+1, i, world.TileWall)
		}
	}
	r.X1 += 2
	r.Left = exit
	return true
}

func (c *Chunk) shrinkRight(r *Room) bool {
	if r.Right == NoExit || !shrinkable(r) ||
		(r.Top != NoExit && r.Top >= r.X2-2) || (r.Bottom != NoExit && r.Bottom >= r.X2-2) {
		return false
	}
	exit := c.Roll(r.Y1, r.Y2)
	for i := r.Y1; i < min(exit, r.Right); i++ {
		c.Build(r.X2, i, world.TileWall)
	}
	for i := max(r.Right, exit) + 1; i <= r.Y2; i++ {
		c.Build(r.X2, i, world.TileWall)
	}
	for i := r.Y1; i <= r.Y2; i++ {
		if i != exit {
			c.Build(r.X2-1, i, world.TileWall)
		}
	}
	r.X2 -= 2
	r.Right = exit
	return true
}
