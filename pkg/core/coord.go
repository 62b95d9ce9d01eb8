package core

// Coord identifies a single cell on a toroidal grid. It is comparable and is
// used as a map key by the sparse simulation buffers.
type Coord struct {
	X int
	Y int
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Wrap applies toroidal wrapping to the provided coordinates and returns the
// normalized in-range Coord.
func (s Size) Wrap(x, y int) Coord {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return Coord{X: x, Y: y}
}
