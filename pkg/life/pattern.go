package life

// Pattern is an ASCII-art stamp. 'X' marks a live cell, any other character
// a dead one. Rows may have different lengths and are handled independently.
type Pattern []string

// GliderGun is the Gosper glider gun.
var GliderGun = Pattern{
	"                         X             ",
	"                       X X             ",
	"             XX      XX            XX  ",
	"            X   X    XX            XX  ",
	" XX        X     X   XX                ",
	" XX        X   X XX    X X             ",
	"           X     X       X             ",
	"            X   X                      ",
	"             XX                        ",
}

// Glider is the lightweight diagonal spaceship.
var Glider = Pattern{
	" X ",
	"  X",
	"XXX",
}

// Blinker is the period-2 oscillator.
var Blinker = Pattern{
	"XXX",
}

// Block is the 2x2 still life.
var Block = Pattern{
	"XX",
	"XX",
}

var patternsByName = map[string]Pattern{
	"glider-gun": GliderGun,
	"glider":     Glider,
	"blinker":    Blinker,
	"block":      Block,
}

// PatternByName looks up a built-in pattern.
func PatternByName(name string) (Pattern, bool) {
	p, ok := patternsByName[name]
	return p, ok
}

// PatternNames lists the built-in pattern names.
func PatternNames() []string {
	names := make([]string, 0, len(patternsByName))
	for name := range patternsByName {
		names = append(names, name)
	}
	return names
}
