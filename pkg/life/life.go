package life

import (
	"strconv"

	"sparselife/pkg/core"
)

// World implements Conway's Game of Life on a sparse toroidal grid with
// per-cell age tracking. Two persistent buffers alternate between the
// "current" and "scratch" roles each step so no storage is reallocated
// while ticking.
type World struct {
	size core.Size
	gens [2]Buffer
	cur  int
	ages AgeMap

	generation uint64
	cfg        Config
}

// New returns a World with the provided dimensions and default seeding.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World for the provided configuration.
// Non-positive dimensions clamp to 1.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.AgeRate <= 0 {
		cfg.AgeRate = defaultAgeRate
	}
	return &World{
		size: core.Size{W: cfg.Width, H: cfg.Height},
		gens: [2]Buffer{make(Buffer), make(Buffer)},
		ages: make(AgeMap),
		cfg:  cfg,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.size }

// Cells exposes the current generation buffer. Zero-valued entries are dead;
// so are absent ones.
func (w *World) Cells() map[core.Coord]uint8 { return w.gens[w.cur] }

// Ages exposes the alive-streak counters, keyed by the current live cells.
func (w *World) Ages() map[core.Coord]uint32 { return w.ages }

// Generation returns the number of steps taken since the last Reset.
func (w *World) Generation() uint64 { return w.generation }

// Population counts the currently live cells.
func (w *World) Population() int { return w.gens[w.cur].Population() }

// Reset clears all state and reseeds the board. A zero seed falls back to the
// configured seed. Seeding stamps glider guns at random positions and
// rotations, or scatters a random soup when the config asks for one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.gens[0].Clear()
	w.gens[1].Clear()
	clear(w.ages)
	w.generation = 0

	rng := core.NewRNG(seed)
	if w.cfg.Soup {
		w.scatterSoup(rng)
		return
	}
	for i := 0; i < w.cfg.Guns; i++ {
		c := rng.Coord(w.size)
		w.Stamp(GliderGun, c.X, c.Y, rng.IntN(4))
	}
}

func (w *World) scatterSoup(rng *core.RNG) {
	cur := w.gens[w.cur]
	for y := 0; y < w.size.H; y++ {
		for x := 0; x < w.size.W; x++ {
			if rng.Bool() {
				cur[core.Coord{X: x, Y: y}] = 1
			}
		}
	}
}

// Step advances the automaton by one generation and updates the ages.
func (w *World) Step() {
	// Former scratch becomes current; the old current is rebuilt in place.
	w.cur ^= 1
	next := w.gens[w.cur]
	prev := w.gens[w.cur^1]
	next.Clear()

	// Accumulate neighbor counts. Cells with no live neighbors never get an
	// entry, so an isolated live cell dies by absence.
	for c, v := range prev {
		if v == 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				next.Add(w.size.Wrap(c.X+dx, c.Y+dy))
			}
		}
	}

	// Collapse neighbor counts back to liveness.
	for c, n := range next {
		switch {
		case n <= 1:
			next[c] = 0
		case n == 3:
			next[c] = 1
		case n >= 4:
			next[c] = 0
		default:
			// Exactly two neighbors keeps the prior state.
			next[c] = prev[c]
		}
	}

	w.ages.Advance(next)
	w.generation++
}

// Stamp writes a pattern onto the current generation at origin (x, y).
// Rotation bit 0 sets the horizontal stride to +1 (else -1) and bit 1 the
// vertical stride, so the four rotations are mirror combinations rather than
// true quarter-turns; rotation 3 is plain reading order. Every visited cell
// is overwritten: 'X' becomes alive, anything else clears the cell, and both
// axes wrap.
func (w *World) Stamp(p Pattern, x, y, rotation int) {
	cur := w.gens[w.cur]
	yp := 0
	for _, row := range p {
		xp := 0
		for i := 0; i < len(row); i++ {
			c := w.size.Wrap(x+xp, y+yp)
			if row[i] == 'X' {
				cur[c] = 1
			} else {
				cur[c] = 0
			}
			if rotation&1 != 0 {
				xp++
			} else {
				xp--
			}
		}
		if rotation&2 != 0 {
			yp++
		} else {
			yp--
		}
	}
}

// AgeRate returns the divisor mapping an age to a palette step.
func (w *World) AgeRate() int { return w.cfg.AgeRate }

// SetIntParameter updates a runtime-adjustable integer tunable.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "age_rate":
		if value < 1 {
			value = 1
		}
		w.cfg.AgeRate = value
		return true
	case "guns":
		if value < 0 {
			value = 0
		}
		w.cfg.Guns = value
		return true
	}
	return false
}

// Parameters reports the current tunables for display purposes.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Grid",
				Params: []core.Parameter{
					{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(w.size.W)},
					{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(w.size.H)},
				},
			},
			{
				Name: "Seeding",
				Params: []core.Parameter{
					{Key: "guns", Label: "Glider guns", Type: core.ParamTypeInt, Value: strconv.Itoa(w.cfg.Guns)},
					{Key: "soup", Label: "Random soup", Type: core.ParamTypeBool, Value: strconv.FormatBool(w.cfg.Soup)},
					{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(w.cfg.Seed, 10)},
				},
			},
			{
				Name: "Display",
				Params: []core.Parameter{
					{Key: "age_rate", Label: "Age rate", Type: core.ParamTypeInt, Value: strconv.Itoa(w.cfg.AgeRate),
						Description: "generations per color step"},
				},
			},
		},
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
