package levelgen

import (
	"chunkgen/pkg/engine/i18n"
	"chunkgen/pkg/engine/world"
	"chunkgen/pkg/game/chunk"
)

// isolationWeight scales isolation against room size when choosing the boss room.
const isolationWeight = 5

var escorts = []world.Tile{world.TileTank, world.TileSupport, world.TileDamage, world.TileSpecialist}

// BossRoom returns the index of the unfurnished room with the highest
// size + isolation*5 score.
func BossRoom(c *chunk.Chunk) (int, bool) {
	best, bestScore := -1, 0
	for i, r := range c.Rooms {
		if r.Has(chunk.FlagFurnished) {
			continue
		}
		score := r.Size() + r.Isolation*isolationWeight
		if best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, best != -1
}

// BossPlacement puts a boss in the middle of the best room, guards it with
// either a ring of escorts or scattered escorts, and adds a few hazards.
// The room is marked furnished. It returns false when every room is
// already furnished.
func BossPlacement(c *chunk.Chunk) (int, bool) {
	idx, ok := BossRoom(c)
	if !ok {
		return -1, false
	}
	p := newPlacer(c, bossSalt)
	r := c.Rooms[idx]

	cx, cy := r.Center()
	if !p.put(cx, cy, world.TileBoss) {
		p.scatter(r, world.TileBoss)
	}
	c.Room(idx).Flags |= chunk.FlagFurnished

	if p.seed.Roll(0, 1) == 0 {
		// Tanks next to the boss, supports on the diagonals.
		for _, d := range world.AllDirections() {
			dx, dy := d.Delta()
			p.put(cx+dx, cy+dy, world.TileTank)
		}
		for _, o := range [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
			p.put(cx+o[0], cy+o[1], world.TileSupport)
		}
		for _, d := range world.AllDirections() {
			if x, y, ok := r.InsideExitCell(d); ok {
				p.put(x, y, world.TileSentinel)
			}
		}
	} else {
		p.scatter(r, world.TileLeader)
		n := p.seed.Roll(2, 4)
		for i := 0; i < n; i++ {
			p.scatter(r, escorts[p.seed.Roll(0, len(escorts)-1)])
		}
	}

	hazards := p.placeHazards(r)
	c.Session().AddMessage("%s", i18n.Tf("MSG_BOSS", c.Config.X, c.Config.Y, idx, hazards))
	return idx, true
}
