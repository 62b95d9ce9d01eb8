package core

// Sim defines the minimal contract a sparse cellular automaton must implement.
// Cells returns the current generation buffer; entries with value 0 are dead
// and absence also means dead. Ages returns the alive-streak counters, keyed
// exactly by the live cells of the current generation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() map[Coord]uint8
	Ages() map[Coord]uint32
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
