package chunk

import (
	"github.com/zyedidia/generic/mapset"

	"chunkgen/pkg/engine/world"
)

// Reachable returns the open tiles reachable from x, y through orthogonal
// steps, as y*width+x indices. One-way tiles are treated as passable.
func (c *Chunk) Reachable(x, y int) mapset.Set[int] {
	visited := mapset.New[int]()
	if !c.InBounds(x, y) || c.Solid(x, y) {
		return visited
	}
	w := c.Width()
	queue := []int{y*w + x}
	visited.Put(y*w + x)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		cx, cy := current%w, current/w
		for _, d := range world.AllDirections() {
			dx, dy := d.Delta()
			nx, ny := cx+dx, cy+dy
			if !c.InBounds(nx, ny) || c.Solid(nx, ny) {
				continue
			}
			n := ny*w + nx
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Connected returns true if every open tile can be reached from the first
// border exit, or from the first open tile when the chunk has no exits.
func (c *Chunk) Connected() bool {
	sx, sy, ok := -1, -1, false
	for _, d := range world.AllDirections() {
		if sx, sy, ok = c.ExitCell(d); ok {
			break
		}
	}
	if !ok {
		sx, sy, ok = c.firstOpen()
		if !ok {
			return true
		}
	}
	reached := c.Reachable(sx, sy)
	open := 0
	c.ForEach(func(x, y int, t world.Tile) {
		if !t.IsSolid() {
			open++
		}
	})
	return reached.Size() == open
}

// firstOpen returns the first non-solid tile in row-major order.
func (c *Chunk) firstOpen() (x, y int, ok bool) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if !c.Solid(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
