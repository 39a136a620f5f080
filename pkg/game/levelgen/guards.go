package levelgen

import (
	"chunkgen/pkg/engine/i18n"
	"chunkgen/pkg/engine/world"
	"chunkgen/pkg/game/chunk"
)

// ProtectRoom posts 1-3 sentinels in every room reached through an exit of
// the room at idx. Corridors and furnished rooms are left alone. It returns
// the number of sentinels placed.
func ProtectRoom(c *chunk.Chunk, idx int) int {
	p := newPlacer(c, guardSalt+uint64(idx))
	r := c.Rooms[idx]
	placed := 0
	for _, d := range world.AllDirections() {
		x, y, ok := r.ExitCell(d)
		if !ok {
			continue
		}
		dx, dy := d.Delta()
		n, ok := smallestRoomAt(c, x+dx, y+dy, idx)
		if !ok {
			continue
		}
		neighbour := c.Rooms[n]
		if neighbour.Has(chunk.FlagCorridor) || neighbour.Has(chunk.FlagFurnished) {
			continue
		}
		placed += p.scatterN(neighbour, world.TileSentinel, p.seed.Roll(1, 3))
	}
	if placed > 0 {
		c.Session().AddMessage("%s", i18n.Tf("MSG_SENTINELS", c.Config.X, c.Config.Y, placed, idx))
	}
	return placed
}
