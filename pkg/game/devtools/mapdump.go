// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chunkgen/pkg/engine/i18n"
	"chunkgen/pkg/engine/world"
	"chunkgen/pkg/game/chunk"
	"chunkgen/pkg/game/levelgen"
)

// MapDumpFilename is the default file written by DumpChunkToFile.
const MapDumpFilename = "chunk.txt"

var tileIDReplacer = strings.NewReplacer(" ", "_", "-", "_")

// tileLabel returns the translated name of t.
func tileLabel(t world.Tile) string {
	return i18n.T("TILE_" + strings.ToUpper(tileIDReplacer.Replace(t.String())))
}

// legend lists "symbol = name" for every tile, in enumeration order.
func legend() string {
	var parts []string
	for _, t := range world.AllTiles() {
		parts = append(parts, fmt.Sprintf("%q = %s", t.Symbol(), tileLabel(t)))
	}
	return strings.Join(parts, "  ")
}

// DumpChunk writes a full debug dump of c: metadata, legend, map, rooms,
// entities and reserved exit cells. The format is sections of key: value
// lines so it stays readable and easy to diff.
func DumpChunk(w io.Writer, c *chunk.Chunk) {
	cfg := c.Config

	fmt.Fprintln(w, i18n.T("DUMP_BEGIN"))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, i18n.T("DUMP_METADATA"))
	fmt.Fprintf(w, "seed: %d\n", cfg.SeedValue)
	fmt.Fprintf(w, "chunk: %d,%d\n", cfg.X, cfg.Y)
	fmt.Fprintf(w, "level_size: %dx%d\n", cfg.LevelWidth, cfg.LevelHeight)
	fmt.Fprintf(w, "chunk_size: %dx%d\n", c.Width(), c.Height())
	fmt.Fprintf(w, "openness: %d chaos: %d brokenness: %d\n", cfg.Openness, cfg.Chaos, cfg.Brokenness)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "exits: top=%d right=%d bottom=%d left=%d\n", c.Top, c.Right, c.Bottom, c.Left)
	fmt.Fprintf(w, "connected: %v\n", c.Connected())
	if err := c.Validate(); err != nil {
		fmt.Fprintf(w, "valid: false (%v)\n", err)
	} else {
		fmt.Fprintln(w, "valid: true")
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, i18n.T("DUMP_LEGEND"))
	fmt.Fprintln(w, legend())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, i18n.T("DUMP_MAP"))
	fmt.Fprint(w, c.String())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, i18n.T("DUMP_ROOMS"))
	if len(c.Rooms) == 0 {
		fmt.Fprintln(w, " ", i18n.T("DUMP_NONE"))
	}
	for i, r := range c.Rooms {
		fmt.Fprintf(w, "  index: %d area: %d,%d-%d,%d size: %d isolation: %d flags: %04b cluster: %d exits: top=%d right=%d bottom=%d left=%d\n",
			i, r.X1, r.Y1, r.X2, r.Y2, r.Size(), r.Isolation, r.Flags, r.Cluster, r.Top, r.Right, r.Bottom, r.Left)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, i18n.T("DUMP_ENTITIES"))
	entities := 0
	c.ForEach(func(x, y int, t world.Tile) {
		if t.IsEntity() {
			fmt.Fprintf(w, "  x: %d y: %d tile: %s\n", x, y, t)
			entities++
		}
	})
	if entities == 0 {
		fmt.Fprintln(w, " ", i18n.T("DUMP_NONE"))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, i18n.T("DUMP_EXIT_CELLS"))
	var cells []int
	levelgen.ExitCells(c).Each(func(k int) {
		cells = append(cells, k)
	})
	sort.Ints(cells)
	for _, k := range cells {
		fmt.Fprintf(w, "  x: %d y: %d tile: %s\n", k%c.Width(), k/c.Width(), c.At(k%c.Width(), k/c.Width()))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, i18n.T("DUMP_END"))
}

// DumpChunkToFile writes the DumpChunk output of every chunk to path, in
// order, and returns the absolute path written.
func DumpChunkToFile(path string, chunks ...*chunk.Chunk) (absPath string, err error) {
	if len(chunks) == 0 {
		return "", fmt.Errorf("no chunk")
	}
	for i, c := range chunks {
		if c == nil {
			return "", fmt.Errorf("chunk %d is nil", i)
		}
	}
	if path == "" {
		path = MapDumpFilename
	}

	absPath, err = filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	for _, c := range chunks {
		DumpChunk(bw, c)
	}
	if err := bw.Flush(); err != nil {
		return absPath, err
	}
	return absPath, f.Sync()
}
