package chunk

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"chunkgen/pkg/engine/dice"
	"chunkgen/pkg/engine/world"
)

const minChunkSize = 16

// Config holds the options for generating one chunk.
type Config struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	Openness   int `json:"openness"`
	Chaos      int `json:"chaos"`
	Brokenness int `json:"brokenness"`

	// X and Y locate the chunk inside a level of LevelWidth by LevelHeight chunks.
	X           int `json:"x"`
	Y           int `json:"y"`
	LevelWidth  int `json:"level_width"`
	LevelHeight int `json:"level_height"`

	SeedValue uint64    `json:"seed"`
	Seed      dice.Seed `json:"-"`
}

// DefaultConfig returns the default configuration for a seed value.
func DefaultConfig(seed uint64) Config {
	return Config{
		Width:       32,
		Height:      32,
		Openness:    2,
		Chaos:       1,
		Brokenness:  1,
		LevelWidth:  4,
		LevelHeight: 4,
		SeedValue:   seed,
		Seed:        dice.NewSeed(seed),
	}
}

// Bind registers the configuration fields on a flag set.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "chunk width (power of two)")
	fs.IntVar(&c.Height, "height", c.Height, "chunk height (power of two)")
	fs.IntVar(&c.Openness, "openness", c.Openness, "lower values place more doors")
	fs.IntVar(&c.Chaos, "chaos", c.Chaos, "upper bound of shrink passes per grown room")
	fs.IntVar(&c.Brokenness, "brokenness", c.Brokenness, "wall erosion strength around nested rooms")
	fs.IntVar(&c.X, "x", c.X, "chunk column inside the level")
	fs.IntVar(&c.Y, "y", c.Y, "chunk row inside the level")
	fs.IntVar(&c.LevelWidth, "level-width", c.LevelWidth, "level width in chunks")
	fs.IntVar(&c.LevelHeight, "level-height", c.LevelHeight, "level height in chunks")
	fs.Uint64Var(&c.SeedValue, "seed", c.SeedValue, "generation seed")
}

// Reseed resets the seed stream from SeedValue.
func (c *Config) Reseed() {
	c.Seed = dice.NewSeed(c.SeedValue)
}

// Validate checks that the configuration can produce a chunk.
func (c Config) Validate() error {
	if !world.IsPow2(c.Width) || !world.IsPow2(c.Height) {
		return fmt.Errorf("chunk size %dx%d: dimensions must be powers of two", c.Width, c.Height)
	}
	if c.Width < minChunkSize || c.Height < minChunkSize {
		return fmt.Errorf("chunk size %dx%d: minimum is %dx%d", c.Width, c.Height, minChunkSize, minChunkSize)
	}
	if c.Openness < 0 || c.Chaos < 0 || c.Brokenness < 0 {
		return fmt.Errorf("openness, chaos and brokenness must not be negative")
	}
	if c.LevelWidth < 1 || c.LevelHeight < 1 {
		return fmt.Errorf("level size %dx%d: must be at least 1x1", c.LevelWidth, c.LevelHeight)
	}
	if c.X < 0 || c.X >= c.LevelWidth || c.Y < 0 || c.Y >= c.LevelHeight {
		return fmt.Errorf("chunk position %d,%d outside level %dx%d", c.X, c.Y, c.LevelWidth, c.LevelHeight)
	}
	return nil
}

// LoadConfig reads a JSON configuration file over the defaults and seeds it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Reseed()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
