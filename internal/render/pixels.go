package render

import (
	"image"
	"image/color"

	"sparselife/internal/core"
	sim "sparselife/pkg/core"
)

// Rasterize projects sparse cell state onto the staging grid as palette
// indices. Dead ground stays 0; a live cell gets index 1 plus one step per
// ageRate generations survived, clipped so the index fits a byte.
func Rasterize(grid *core.ByteGrid, cells map[sim.Coord]uint8, ages map[sim.Coord]uint32, ageRate int) {
	grid.Clear()
	if ageRate < 1 {
		ageRate = 1
	}
	const maxStep = 254
	for c, v := range cells {
		if v == 0 {
			continue
		}
		step := ages[c] / uint32(ageRate)
		if step > maxStep {
			step = maxStep
		}
		grid.Set(c.X, c.Y, uint8(1+step))
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ToImage renders the staging grid into a new RGBA image using the palette.
func ToImage(grid *core.ByteGrid, palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.W, grid.H))
	fillPaletteRGBA(img.Pix, grid.Cells(), palette)
	return img
}
