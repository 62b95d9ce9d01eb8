package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Guns    int
	Soup    bool
	AgeRate int
	Scene   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Scale:   2,
		TPS:     30,
		Seed:    1337,
		Width:   512,
		Height:  384,
		Guns:    10,
		AgeRate: 16,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Guns, "guns", c.Guns, "glider guns stamped on reset")
	fs.BoolVar(&c.Soup, "soup", c.Soup, "seed a random soup instead of glider guns")
	fs.IntVar(&c.AgeRate, "agerate", c.AgeRate, "generations per color fade step")
	fs.StringVar(&c.Scene, "scene", c.Scene, "TOML scene file overriding the default seeding")
}

// SimOptions converts the flag values into a factory configuration map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"seed":     strconv.FormatInt(c.Seed, 10),
		"guns":     strconv.Itoa(c.Guns),
		"soup":     strconv.FormatBool(c.Soup),
		"age_rate": strconv.Itoa(c.AgeRate),
	}
}
