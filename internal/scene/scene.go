package scene

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"sparselife/pkg/life"
)

// Scene describes a reproducible starting board: grid dimensions plus a list
// of pattern stamps applied in order.
type Scene struct {
	Grid  GridConfig `toml:"grid"`
	Seeds []Seed     `toml:"seed"`
}

// GridConfig holds the toroidal grid dimensions.
type GridConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Seed stamps one built-in pattern at an origin with a rotation (0-3).
type Seed struct {
	Pattern  string `toml:"pattern"`
	X        int    `toml:"x"`
	Y        int    `toml:"y"`
	Rotation int    `toml:"rotation"`
}

// Load reads and validates a TOML scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	sc := defaults()
	if err := toml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

func defaults() *Scene {
	cfg := life.DefaultConfig()
	return &Scene{Grid: GridConfig{Width: cfg.Width, Height: cfg.Height}}
}

func (s *Scene) validate() error {
	if s.Grid.Width <= 0 || s.Grid.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", s.Grid.Width, s.Grid.Height)
	}
	for i, seed := range s.Seeds {
		if _, ok := life.PatternByName(seed.Pattern); !ok {
			return fmt.Errorf("seed %d: unknown pattern %q", i, seed.Pattern)
		}
		if seed.Rotation < 0 || seed.Rotation > 3 {
			return fmt.Errorf("seed %d: rotation must be in 0-3, got %d", i, seed.Rotation)
		}
	}
	return nil
}

// Build constructs a world matching the scene and stamps its seeds.
func (s *Scene) Build() *life.World {
	cfg := life.DefaultConfig()
	cfg.Width = s.Grid.Width
	cfg.Height = s.Grid.Height
	cfg.Guns = 0
	world := life.NewWithConfig(cfg)
	for _, seed := range s.Seeds {
		p, _ := life.PatternByName(seed.Pattern)
		world.Stamp(p, seed.X, seed.Y, seed.Rotation)
	}
	return world
}
