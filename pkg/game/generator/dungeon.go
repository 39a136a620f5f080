package generator

import (
	"fmt"

	"chunkgen/pkg/game/chunk"
	"chunkgen/pkg/game/levelgen"
	"chunkgen/pkg/game/state"
)

// DungeonGenerator runs the full pipeline: structure, decoration, doors and population.
type DungeonGenerator struct{}

// Name returns the name of this generator
func (g *DungeonGenerator) Name() string {
	return "dungeon"
}

// Generate builds one populated chunk for cfg
func (g *DungeonGenerator) Generate(cfg chunk.Config, session *state.Session) (*chunk.Chunk, error) {
	c, err := chunk.New(cfg, session)
	if err != nil {
		return nil, fmt.Errorf("%s generator: %w", g.Name(), err)
	}

	c.GenerateExits()
	c.ConnectExits()
	c.Expand(3, 6)
	c.FilterRoomInRoom()
	c.Expand(2, 4)
	c.ClusterDoors(3)
	c.OneWayDoors(1)
	c.Beautify()

	if idx, ok := levelgen.BossPlacement(c); ok {
		levelgen.ProtectRoom(c, idx)
	}
	levelgen.Wildlife(c)

	return finish(g, c)
}
