package generator

import (
	"fmt"

	"chunkgen/pkg/game/chunk"
	"chunkgen/pkg/game/state"
)

// WarrenGenerator builds bare structure: connected exits and two generations
// of expansion, without decoration or population.
type WarrenGenerator struct{}

// Name returns the name of this generator
func (g *WarrenGenerator) Name() string {
	return "warren"
}

// Generate builds one unpopulated chunk for cfg
func (g *WarrenGenerator) Generate(cfg chunk.Config, session *state.Session) (*chunk.Chunk, error) {
	c, err := chunk.New(cfg, session)
	if err != nil {
		return nil, fmt.Errorf("%s generator: %w", g.Name(), err)
	}

	c.GenerateExits()
	c.ConnectExitsSpokes()
	c.Expand(3, 6)
	c.Expand(2, 5)
	c.OneWayDoors(1)
	c.Beautify()

	return finish(g, c)
}
