package life

import "image/color"

const paletteSize = 256

var agePalette = buildAgePalette()

// Palette exposes the color ramp used for rendering the world. Index 0 is the
// dead background; live cells fade from light blue through yellow to red as
// their age grows.
func (w *World) Palette() []color.RGBA { return agePalette }

func buildAgePalette() []color.RGBA {
	base := [3]color.RGBA{
		{R: 128, G: 220, B: 255, A: 255}, // light blue
		{R: 255, G: 255, B: 0, A: 255},   // yellow
		{R: 255, G: 0, B: 0, A: 255},     // red
	}

	palette := make([]color.RGBA, paletteSize)
	palette[0] = color.RGBA{A: 255}

	fades := paletteSize - 1
	ranges := len(base) - 1
	perRange := (fades + ranges - 1) / ranges
	for i := 0; i < fades; i++ {
		cn := i / perRange
		co := cn + 1
		s := i % perRange
		oms := perRange - s
		palette[i+1] = color.RGBA{
			R: uint8((int(base[co].R)*s + int(base[cn].R)*oms) / perRange),
			G: uint8((int(base[co].G)*s + int(base[cn].G)*oms) / perRange),
			B: uint8((int(base[co].B)*s + int(base[cn].B)*oms) / perRange),
			A: 255,
		}
	}
	return palette
}
