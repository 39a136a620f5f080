// Package world provides the tile grid primitives a chunk is built on.
package world

import (
	"fmt"
	"math/bits"
)

// Grid is a power-of-two tile map stored row-major and addressed by shifting.
type Grid struct {
	cells  []Tile
	width  int
	height int
	bits   uint
}

// NewGrid creates a grid filled with rock. Both dimensions must be powers of two.
func NewGrid(width, height int) (*Grid, error) {
	if !IsPow2(width) || !IsPow2(height) {
		return nil, fmt.Errorf("grid size %dx%d: dimensions must be powers of two", width, height)
	}
	return &Grid{
		cells:  make([]Tile, width*height),
		width:  width,
		height: height,
		bits:   uint(bits.TrailingZeros(uint(width))),
	}, nil
}

// IsPow2 reports whether n is a positive power of two
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// OnBorder checks if a position lies on the outermost ring
func (g *Grid) OnBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

func (g *Grid) index(x, y int) int {
	return y<<g.bits + x
}

// At returns the tile at x, y. Out-of-bounds positions read as rock.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileRock
	}
	return g.cells[g.index(x, y)]
}

// Solid returns true if the tile at x, y is rock or any kind of wall
func (g *Grid) Solid(x, y int) bool {
	return g.At(x, y).IsSolid()
}

// Empty returns true if the tile at x, y is open floor
func (g *Grid) Empty(x, y int) bool {
	return g.At(x, y) == TileEmpty
}

// Wall returns true if the tile at x, y is an intact wall
func (g *Grid) Wall(x, y int) bool {
	return g.At(x, y) == TileWall
}

// Build sets the tile at x, y unconditionally
func (g *Grid) Build(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.cells[g.index(x, y)] = t
	}
}

// TryBuild sets the tile at x, y only if it is currently empty
func (g *Grid) TryBuild(x, y int, t Tile) bool {
	if !g.Empty(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = t
	return true
}

// Fill resets the tile at x, y to rock
func (g *Grid) Fill(x, y int) {
	g.Build(x, y, TileRock)
}

// Dig opens x, y and turns the rock around it into wall
func (g *Grid) Dig(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = TileEmpty
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) && g.cells[g.index(nx, ny)] == TileRock {
				g.cells[g.index(nx, ny)] = TileWall
			}
		}
	}
}

// Beautify turns interior walls that touch no open cell back into rock
func (g *Grid) Beautify() {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.At(x, y) != TileWall {
				continue
			}
			enclosed := true
			for dy := -1; dy <= 1 && enclosed; dy++ {
				for dx := -1; dx <= 1; dx++ {
					t := g.At(x+dx, y+dy)
					if t != TileRock && t != TileWall {
						enclosed = false
						break
					}
				}
			}
			if enclosed {
				g.cells[g.index(x, y)] = TileRock
			}
		}
	}
}

// ForEach calls fn for every cell in row-major order
func (g *Grid) ForEach(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[g.index(x, y)])
		}
	}
}

// Count returns the number of cells holding t
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// String renders the grid using tile symbols, one line per row
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			buf = append(buf, g.cells[g.index(x, y)].Symbol())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
