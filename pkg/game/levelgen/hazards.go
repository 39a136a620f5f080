package levelgen

import (
	"chunkgen/pkg/engine/dice"
	"chunkgen/pkg/engine/world"
	"chunkgen/pkg/game/chunk"
)

// hazardTiles and hazardWeights give the split between hazard kinds.
var (
	hazardTiles   = []world.Tile{world.TileTurret, world.TileTotem, world.TileTrap}
	hazardWeights = dice.NewTable(3, 2, 5)
)

// placeHazards scatters 1-3 hazards in r and returns how many were placed.
func (p *placer) placeHazards(r chunk.Room) int {
	n := p.seed.Roll(1, 3)
	placed := 0
	for i := 0; i < n; i++ {
		t := hazardTiles[p.seed.Pick(hazardWeights)]
		if p.scatter(r, t) {
			placed++
		}
	}
	return placed
}
