//go:build ebiten

package render

import (
	"image/color"

	"sparselife/internal/core"
	sim "sparselife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter rasterizes sparse cell state into an RGBA image and draws it
// scaled onto the screen.
type GridPainter struct {
	grid *core.ByteGrid
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	grid := core.NewByteGrid(w, h)
	return &GridPainter{
		grid: grid,
		img:  ebiten.NewImage(grid.W, grid.H),
		buf:  make([]byte, 4*grid.W*grid.H),
	}
}

// Blit uploads the provided state into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells map[sim.Coord]uint8, ages map[sim.Coord]uint32, palette []color.RGBA, ageRate, scale int) {
	Rasterize(gp.grid, cells, ages, ageRate)
	fillPaletteRGBA(gp.buf, gp.grid.Cells(), palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.grid.W, gp.grid.H }
