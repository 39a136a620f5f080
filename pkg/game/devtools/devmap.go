package devtools

import (
	"fmt"
	"io"
	"strings"

	"chunkgen/pkg/engine/i18n"
	"chunkgen/pkg/engine/world"
	"chunkgen/pkg/game/chunk"
	"chunkgen/pkg/game/state"
)

// devMapSize is the edge of the developer chunk
const devMapSize = 32

// DevChunk builds a hard-coded developer chunk: one open hall with every
// non-rock tile placed in rows, with a 3-cell margin between each.
func DevChunk(session *state.Session) *chunk.Chunk {
	cfg := chunk.DefaultConfig(0)
	cfg.Width, cfg.Height = devMapSize, devMapSize
	cfg.LevelWidth, cfg.LevelHeight = 1, 1
	c, err := chunk.New(cfg, session)
	if err != nil {
		panic(err)
	}

	hall := chunk.NewRoom(1, 1, devMapSize-2, devMapSize-2, 0, 0)
	for y := hall.Y1; y <= hall.Y2; y++ {
		for x := hall.X1; x <= hall.X2; x++ {
			c.Dig(x, y)
		}
	}
	c.AddRoom(hall)

	const margin = 3
	perRow := (hall.Width() - 2) / (margin + 1)
	i := 0
	for _, t := range world.AllTiles() {
		if t == world.TileRock || t == world.TileEmpty {
			continue
		}
		x := hall.X1 + 1 + (i%perRow)*(margin+1)
		y := hall.Y1 + 1 + (i/perRow)*(margin+1)
		c.Build(x, y, t)
		i++
	}

	session.AddMessage("%s", i18n.Tf("MSG_DEV_CHUNK", i, margin))
	return c
}

// FindTile returns the first position of t in c, scanning rows top to bottom.
func FindTile(c *chunk.Chunk, t world.Tile) (x, y int, ok bool) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) == t {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// FindTileByName resolves a tile name typed by a user. An exact match wins,
// otherwise the first tile whose name contains name, ignoring case.
func FindTileByName(name string) (world.Tile, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for _, t := range world.AllTiles() {
		if t.String() == name {
			return t, true
		}
	}
	for _, t := range world.AllTiles() {
		if strings.Contains(t.String(), name) {
			return t, true
		}
	}
	return 0, false
}

// ReportTile resolves name with FindTileByName and writes, for each chunk,
// where the first such tile sits or that the chunk has none.
func ReportTile(w io.Writer, name string, chunks ...*chunk.Chunk) error {
	t, ok := FindTileByName(name)
	if !ok {
		return fmt.Errorf("%s", i18n.Tf("CLI_UNKNOWN_TILE", name))
	}
	for _, c := range chunks {
		label := tileLabel(t)
		if x, y, ok := FindTile(c, t); ok {
			fmt.Fprintln(w, i18n.Tf("CLI_TILE_FOUND", c.Config.X, c.Config.Y, label, x, y))
		} else {
			fmt.Fprintln(w, i18n.Tf("CLI_TILE_MISSING", c.Config.X, c.Config.Y, label))
		}
	}
	return nil
}
