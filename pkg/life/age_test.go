package life

import (
	"testing"

	"sparselife/pkg/core"
)

func TestAdvanceMatchesLiveSet(t *testing.T) {
	a := core.Coord{X: 1, Y: 1}
	b := core.Coord{X: 2, Y: 2}
	c := core.Coord{X: 3, Y: 3}
	d := core.Coord{X: 4, Y: 4}

	ages := AgeMap{a: 5, c: 2}
	live := Buffer{
		a: 1,
		b: 1,
		c: 0, // stale zero entry, counts as dead
	}

	ages.Advance(live)

	if len(ages) != 2 {
		t.Fatalf("age map has %d entries, expected 2", len(ages))
	}
	if ages[a] != 6 {
		t.Fatalf("surviving cell age = %d, expected 6", ages[a])
	}
	if ages[b] != 1 {
		t.Fatalf("newborn cell age = %d, expected 1", ages[b])
	}
	if _, ok := ages[c]; ok {
		t.Fatal("stale zero-valued cell kept an age entry")
	}
	if _, ok := ages[d]; ok {
		t.Fatal("never-live cell has an age entry")
	}
}

func TestAgeStreakAndRebirth(t *testing.T) {
	w := emptyWorld(5, 5)
	set(w, 2, 1)
	set(w, 2, 2)
	set(w, 2, 3)

	center := core.Coord{X: 2, Y: 2}
	topArm := core.Coord{X: 2, Y: 1}
	leftArm := core.Coord{X: 1, Y: 2}

	w.Step() // horizontal
	if age := w.Ages()[center]; age != 1 {
		t.Fatalf("center age = %d after one step, expected 1", age)
	}
	if _, ok := w.Ages()[topArm]; ok {
		t.Fatal("dead arm kept an age entry")
	}

	w.Step() // vertical
	if age := w.Ages()[center]; age != 2 {
		t.Fatalf("center age = %d after two steps, expected 2", age)
	}
	if age := w.Ages()[topArm]; age != 1 {
		t.Fatalf("reborn arm age = %d, expected reset to 1", age)
	}

	w.Step() // horizontal again
	if age := w.Ages()[center]; age != 3 {
		t.Fatalf("center age = %d after three steps, expected 3", age)
	}
	if age := w.Ages()[leftArm]; age != 1 {
		t.Fatalf("reborn arm age = %d, expected reset to 1", age)
	}

	// The age key set tracks the live set exactly.
	for c := range w.Ages() {
		if w.Cells()[c] == 0 {
			t.Fatalf("age entry for dead cell (%d,%d)", c.X, c.Y)
		}
	}
	for c, v := range w.Cells() {
		if v == 0 {
			continue
		}
		if _, ok := w.Ages()[c]; !ok {
			t.Fatalf("live cell (%d,%d) missing an age entry", c.X, c.Y)
		}
	}
}
