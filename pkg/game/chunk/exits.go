package chunk

import (
	"chunkgen/pkg/engine/world"
)

// Side tags passed to seed derivation: 0 for a border shared with the chunk
// above or below, 1 for a border shared with the chunk to the left or right.
const (
	tagVertical   = 0
	tagHorizontal = 1
)

// GenerateExits places the border openings shared with neighbouring chunks.
// Each opening is derived from the level seed and the coordinates of the
// lower-indexed chunk of the pair, so both chunks compute the same value.
func (c *Chunk) GenerateExits() {
	x, y := c.Config.X, c.Config.Y
	w, h := c.Width(), c.Height()
	seed := c.Config.Seed

	if c.Top == NoExit && y > 0 {
		d := seed.Derive(x, y-1, tagVertical)
		c.MakeExit(world.Top, d.Roll(3, w-3))
	}
	if c.Left == NoExit && x > 0 {
		d := seed.Derive(x-1, y, tagHorizontal)
		c.MakeExit(world.Left, d.Roll(3, h-3))
	}
	if c.Bottom == NoExit && y < c.Config.LevelHeight-1 {
		d := seed.Derive(x, y, tagVertical)
		c.MakeExit(world.Bottom, d.Roll(3, w-3))
	}
	if c.Right == NoExit && x < c.Config.LevelWidth-1 {
		d := seed.Derive(x, y, tagHorizontal)
		c.MakeExit(world.Right, d.Roll(3, h-3))
	}
	if debugAssertions {
		c.mustPass(c.SelfTest())
	}
}

// MakeExit opens the border at v on side d, sometimes as a door.
func (c *Chunk) MakeExit(d world.Direction, v int) {
	c.setExit(d, v)
	x, y, _ := c.ExitCell(d)
	c.Dig(x, y)
	if c.Roll(0, c.Config.Openness*2) == 0 {
		c.Build(x, y, world.TileDoor)
	}
}
