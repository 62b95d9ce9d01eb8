package life

import "strconv"

const defaultAgeRate = 16

// Config controls the Life world dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Guns is the number of glider guns stamped at random positions on Reset.
	Guns int
	// Soup replaces gun seeding with a uniform random half-density fill.
	Soup bool

	// AgeRate is how many consecutive generations a cell must survive to
	// advance one palette step.
	AgeRate int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   512,
		Height:  384,
		Seed:    1337,
		Guns:    10,
		AgeRate: defaultAgeRate,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["guns"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Guns = parsed
		}
	}
	if v, ok := cfg["soup"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Soup = parsed
		}
	}
	if v, ok := cfg["age_rate"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.AgeRate = parsed
		}
	}
	return c
}
