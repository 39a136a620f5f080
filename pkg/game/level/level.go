// Package level generates a rectangular grid of chunks that share their borders.
//
// Chunks are generated independently, possibly in parallel. Neighbours agree
// on the openings of a shared border because both derive them from the level
// seed origin and the same coordinates.
package level

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"chunkgen/pkg/game/chunk"
	"chunkgen/pkg/game/generator"
	"chunkgen/pkg/game/state"
)

// Level is a LevelWidth by LevelHeight grid of chunks.
type Level struct {
	// Config is the template for every chunk. X, Y and the seed stream are
	// set per chunk.
	Config    chunk.Config
	Generator generator.ChunkGenerator

	// Workers bounds concurrent chunk generation. Zero means GOMAXPROCS.
	Workers int

	session *state.Session
	chunks  []*chunk.Chunk
}

// New creates an empty level. gen may be nil for the default generator.
func New(cfg chunk.Config, gen generator.ChunkGenerator, session *state.Session) (*Level, error) {
	origin := cfg
	origin.X, origin.Y = 0, 0
	if err := origin.Validate(); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	return &Level{
		Config:    cfg,
		Generator: gen,
		session:   session,
	}, nil
}

// Width returns the level width in chunks
func (l *Level) Width() int { return l.Config.LevelWidth }

// Height returns the level height in chunks
func (l *Level) Height() int { return l.Config.LevelHeight }

// ChunkConfig returns the configuration of the chunk at x, y.
func (l *Level) ChunkConfig(x, y int) chunk.Config {
	cfg := l.Config
	cfg.X, cfg.Y = x, y
	cfg.Seed = l.Config.Seed.At(x, y)
	return cfg
}

// Generate builds every chunk and verifies the seams between them. The
// result does not depend on the number of workers.
func (l *Level) Generate(ctx context.Context) error {
	w, h := l.Width(), l.Height()
	chunks := make([]*chunk.Chunk, w*h)
	sessions := make([]*state.Session, w*h)

	workers := l.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			cfg := l.ChunkConfig(x, y)
			sessions[idx] = l.session.Child()
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				c, err := l.Generator.Generate(cfg, sessions[idx])
				if err != nil {
					return fmt.Errorf("level chunk %d,%d: %w", cfg.X, cfg.Y, err)
				}
				chunks[idx] = c
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, s := range sessions {
		l.session.Merge(s)
	}
	l.chunks = chunks
	return l.CheckSeams()
}

// Chunk returns the chunk at x, y, or nil before generation or out of range.
func (l *Level) Chunk(x, y int) *chunk.Chunk {
	if l.chunks == nil || x < 0 || y < 0 || x >= l.Width() || y >= l.Height() {
		return nil
	}
	return l.chunks[y*l.Width()+x]
}

// Chunks returns every chunk in row-major order, or nil before generation.
func (l *Level) Chunks() []*chunk.Chunk {
	if l.chunks == nil {
		return nil
	}
	return append([]*chunk.Chunk(nil), l.chunks...)
}

// CheckSeams verifies that every pair of neighbouring chunks declares the
// same exit on their shared border and that the open border tiles match.
func (l *Level) CheckSeams() error {
	if l.chunks == nil {
		return errors.New("level not generated")
	}
	var errs []error
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			a := l.Chunk(x, y)
			if right := l.Chunk(x+1, y); right != nil {
				if a.Right != right.Left {
					errs = append(errs, fmt.Errorf("seam %d,%d|%d,%d: exits %d and %d", x, y, x+1, y, a.Right, right.Left))
				} else if !equalSets(openColumn(a, a.Width()-1), openColumn(right, 0)) {
					errs = append(errs, fmt.Errorf("seam %d,%d|%d,%d: border openings differ", x, y, x+1, y))
				}
			}
			if below := l.Chunk(x, y+1); below != nil {
				if a.Bottom != below.Top {
					errs = append(errs, fmt.Errorf("seam %d,%d/%d,%d: exits %d and %d", x, y, x, y+1, a.Bottom, below.Top))
				} else if !equalSets(openRow(a, a.Height()-1), openRow(below, 0)) {
					errs = append(errs, fmt.Errorf("seam %d,%d/%d,%d: border openings differ", x, y, x, y+1))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// openColumn returns the rows where column x of c is not solid.
func openColumn(c *chunk.Chunk, x int) mapset.Set[int] {
	open := mapset.New[int]()
	for y := 0; y < c.Height(); y++ {
		if !c.Solid(x, y) {
			open.Put(y)
		}
	}
	return open
}

// openRow returns the columns where row y of c is not solid.
func openRow(c *chunk.Chunk, y int) mapset.Set[int] {
	open := mapset.New[int]()
	for x := 0; x < c.Width(); x++ {
		if !c.Solid(x, y) {
			open.Put(x)
		}
	}
	return open
}

func equalSets(a, b mapset.Set[int]) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(v int) {
		if !b.Has(v) {
			same = false
		}
	})
	return same
}

// Render writes the level as text, placing as many chunks side by side as
// fit in maxWidth columns.
func (l *Level) Render(w io.Writer, maxWidth int) {
	if l.chunks == nil {
		return
	}
	per := max(1, maxWidth/l.Config.Width)
	for y := 0; y < l.Height(); y++ {
		for x0 := 0; x0 < l.Width(); x0 += per {
			x1 := min(l.Width(), x0+per)
			for row := 0; row < l.Config.Height; row++ {
				line := make([]rune, 0, (x1-x0)*l.Config.Width)
				for x := x0; x < x1; x++ {
					c := l.Chunk(x, y)
					for col := 0; col < c.Width(); col++ {
						line = append(line, c.At(col, row).Symbol())
					}
				}
				fmt.Fprintln(w, string(line))
			}
		}
	}
}
