// Package generator assembles chunk filters into named generation pipelines.
package generator

import (
	"fmt"
	"strings"

	"chunkgen/pkg/engine/i18n"
	"chunkgen/pkg/game/chunk"
	"chunkgen/pkg/game/state"
)

// ChunkGenerator is an interface for chunk generation pipelines
type ChunkGenerator interface {
	Generate(cfg chunk.Config, session *state.Session) (*chunk.Chunk, error)
	Name() string
}

// Available generators
var (
	Dungeon = &DungeonGenerator{}
	Warren  = &WarrenGenerator{}
)

// DefaultGenerator is the default chunk generator
var DefaultGenerator ChunkGenerator = Dungeon

// All lists every available generator
var All = []ChunkGenerator{Dungeon, Warren}

// ByName returns the generator whose name matches, ignoring case
func ByName(name string) (ChunkGenerator, error) {
	for _, g := range All {
		if strings.EqualFold(g.Name(), name) {
			return g, nil
		}
	}
	names := make([]string, len(All))
	for i, g := range All {
		names[i] = g.Name()
	}
	return nil, fmt.Errorf("unknown generator %q (available: %s)", name, strings.Join(names, ", "))
}

// finish validates the chunk produced by a generator pipeline.
func finish(g ChunkGenerator, c *chunk.Chunk) (*chunk.Chunk, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s chunk %d,%d: %w", g.Name(), c.Config.X, c.Config.Y, err)
	}
	c.Session().AddMessage("%s", i18n.Tf("MSG_CHUNK_GENERATED", c.Config.X, c.Config.Y, g.Name(), len(c.Rooms)))
	return c, nil
}
