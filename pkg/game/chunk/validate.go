package chunk

import (
	"errors"
	"fmt"
	"os"

	"github.com/zyedidia/generic/mapset"

	"chunkgen/pkg/engine/world"
)

// SelfTest checks the chunk grid: power-of-two size, solid corners, and a
// solid border everywhere except at the declared exits.
func (c *Chunk) SelfTest() error {
	w, h := c.Width(), c.Height()
	if !world.IsPow2(w) || !world.IsPow2(h) {
		return fmt.Errorf("chunk size %dx%d is not a power of two", w, h)
	}
	for _, p := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		if !c.Solid(p[0], p[1]) {
			return fmt.Errorf("corner %d,%d is open", p[0], p[1])
		}
	}
	exits := mapset.New[int]()
	for _, d := range world.AllDirections() {
		if x, y, ok := c.ExitCell(d); ok {
			exits.Put(y*w + x)
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !c.OnBorder(x, y) || c.Solid(x, y) || exits.Has(y*w+x) {
				continue
			}
			return fmt.Errorf("border tile %d,%d is %v outside any exit", x, y, c.At(x, y))
		}
	}
	return nil
}

// RoomListSelfTest checks every room against the grid: bounds strictly inside
// the border, exits on passable tiles, and no two rooms with identical bounds.
func (c *Chunk) RoomListSelfTest() error {
	var errs []error
	type bounds struct{ x1, y1, x2, y2 int }
	seen := mapset.New[bounds]()
	for i, r := range c.Rooms {
		if err := r.SelfTest(); err != nil {
			errs = append(errs, fmt.Errorf("room %d: %w", i, err))
			continue
		}
		if r.X1 < 1 || r.Y1 < 1 || r.X2 > c.Width()-2 || r.Y2 > c.Height()-2 {
			errs = append(errs, fmt.Errorf("room %d %v touches the border", i, r))
		}
		b := bounds{r.X1, r.Y1, r.X2, r.Y2}
		if seen.Has(b) {
			errs = append(errs, fmt.Errorf("room %d %v duplicates another room", i, r))
		}
		seen.Put(b)
		for _, d := range world.AllDirections() {
			x, y, ok := r.ExitCell(d)
			if !ok {
				continue
			}
			if t := c.At(x, y); !t.IsPassage() {
				errs = append(errs, fmt.Errorf("room %d %v: %s exit at %d,%d is %v", i, r, d, x, y, t))
			}
		}
	}
	return errors.Join(errs...)
}

// Validate runs all grid and room checks.
func (c *Chunk) Validate() error {
	return errors.Join(c.SelfTest(), c.RoomListSelfTest())
}

// mustPass halts generation with a full dump when a check fails. Callers
// guard it with debugAssertions so release builds skip the check itself.
func (c *Chunk) mustPass(err error) {
	if err == nil {
		return
	}
	c.Dump(os.Stderr)
	for i := range c.Rooms {
		c.DumpRoom(os.Stderr, i)
	}
	panic(fmt.Sprintf("chunk %d,%d: invariant violated: %v", c.Config.X, c.Config.Y, err))
}
