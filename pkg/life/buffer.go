package life

import "sparselife/pkg/core"

// Buffer is one sparse generation of the grid. Keys are cells that have been
// touched; a missing key reads as 0. In a settled generation values are 0
// (dead) or 1 (alive). While the next generation is being built the same
// field temporarily holds a neighbor count before the rule collapses it back
// to 0/1, so zero-valued entries can linger until the buffer is next cleared.
type Buffer map[core.Coord]uint8

// Get returns the entry for c, defaulting to 0 when absent.
func (b Buffer) Get(c core.Coord) uint8 { return b[c] }

// Set writes the entry for c.
func (b Buffer) Set(c core.Coord, v uint8) { b[c] = v }

// Add increments the entry for c, creating it at 1 when absent.
func (b Buffer) Add(c core.Coord) { b[c]++ }

// Clear removes every entry while keeping the allocated storage.
func (b Buffer) Clear() { clear(b) }

// Population counts the live entries.
func (b Buffer) Population() int {
	n := 0
	for _, v := range b {
		if v != 0 {
			n++
		}
	}
	return n
}

// AgeMap tracks, per live cell, the number of consecutive generations it has
// been alive. Its key set always equals the live set after Advance.
type AgeMap map[core.Coord]uint32

// Advance reconciles the ages against the current generation: entries for
// cells that are no longer live are dropped, every live cell's age grows by
// one, and cells that just (re)appeared start at 1. Zero-valued entries in
// live are stale and count as dead.
func (a AgeMap) Advance(live Buffer) {
	for c := range a {
		if live[c] == 0 {
			delete(a, c)
		}
	}
	for c, v := range live {
		if v == 0 {
			continue
		}
		a[c]++
	}
}
