// Package levelgen populates generated chunks with bosses, guards, hazards and wildlife.
//
// Every filter draws from a seed forked off the chunk's main stream, so
// running population never changes the structural layout produced by the
// same configuration.
package levelgen

import (
	"github.com/zyedidia/generic/mapset"

	"chunkgen/pkg/engine/dice"
	"chunkgen/pkg/engine/world"
	"chunkgen/pkg/game/chunk"
)

// maxAttempts caps random cell sampling for a single entity.
const maxAttempts = 100

// Seed salts for the population filters.
const (
	bossSalt     = 0xb055
	guardSalt    = 0x6a4d
	wildlifeSalt = 0x3170
)

// placer puts entity tiles on empty floor, never on a reserved cell.
type placer struct {
	c        *chunk.Chunk
	seed     dice.Seed
	reserved mapset.Set[int]
}

func newPlacer(c *chunk.Chunk, salt uint64) *placer {
	return &placer{
		c:        c,
		seed:     c.Config.Seed.Fork(salt),
		reserved: ExitCells(c),
	}
}

// ExitCells returns the exit tiles of the chunk and of every room, as
// y*width+x indices.
func ExitCells(c *chunk.Chunk) mapset.Set[int] {
	cells := mapset.New[int]()
	w := c.Width()
	for _, d := range world.AllDirections() {
		if x, y, ok := c.ExitCell(d); ok {
			cells.Put(y*w + x)
		}
		for _, r := range c.Rooms {
			if x, y, ok := r.ExitCell(d); ok {
				cells.Put(y*w + x)
			}
		}
	}
	return cells
}

// put places t at x, y when the cell is empty floor and not reserved.
func (p *placer) put(x, y int, t world.Tile) bool {
	if !p.c.InBounds(x, y) || p.reserved.Has(y*p.c.Width()+x) {
		return false
	}
	return p.c.TryBuild(x, y, t)
}

// scatter places t on a random empty cell of r. It gives up silently after
// maxAttempts samples.
func (p *placer) scatter(r chunk.Room, t world.Tile) bool {
	for i := 0; i < maxAttempts; i++ {
		x := p.seed.Roll(r.X1, r.X2)
		y := p.seed.Roll(r.Y1, r.Y2)
		if p.put(x, y, t) {
			return true
		}
	}
	return false
}

// scatterN places up to n copies of t in r and returns how many were placed.
func (p *placer) scatterN(r chunk.Room, t world.Tile, n int) int {
	placed := 0
	for i := 0; i < n; i++ {
		if p.scatter(r, t) {
			placed++
		}
	}
	return placed
}

// smallestRoomAt returns the index of the smallest room other than skip
// containing x, y, so a nested room wins over its parent.
func smallestRoomAt(c *chunk.Chunk, x, y, skip int) (int, bool) {
	best := -1
	for i, r := range c.Rooms {
		if i == skip || !r.Contains(x, y) {
			continue
		}
		if best == -1 || r.Size() < c.Rooms[best].Size() {
			best = i
		}
	}
	return best, best != -1
}
