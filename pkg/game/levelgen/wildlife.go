package levelgen

import (
	"chunkgen/pkg/engine/i18n"
	"chunkgen/pkg/engine/world"
	"chunkgen/pkg/game/chunk"
)

// Wildlife scatters wild creatures in every room. Bigger rooms can hold more,
// but small counts are far more likely. It returns the number placed.
func Wildlife(c *chunk.Chunk) int {
	p := newPlacer(c, wildlifeSalt)
	placed := 0
	for _, r := range c.Rooms {
		n := p.seed.QuadraticWeightedRoll(r.Size() / 16)
		placed += p.scatterN(r, world.TileWild, n)
	}
	c.Session().AddMessage("%s", i18n.Tf("MSG_WILDLIFE", c.Config.X, c.Config.Y, placed))
	return placed
}
