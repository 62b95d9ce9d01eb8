//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"sparselife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Generation() uint64
	Population() int
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached panel contents from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines, h.sim.Name())
	if stats, ok := h.sim.(statsProvider); ok {
		h.lines = append(h.lines,
			fmt.Sprintf("gen  %d", stats.Generation()),
			fmt.Sprintf("pop  %d", stats.Population()),
		)
	}
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	for _, group := range provider.Parameters().Groups {
		h.lines = append(h.lines, "", group.Name)
		for _, p := range group.Params {
			h.lines = append(h.lines, fmt.Sprintf("  %-10s %s", p.Label, p.Value))
		}
	}
}

// Draw paints the panel anchored at offsetX on the screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := 16
	for _, line := range h.lines {
		if line != "" {
			text.Draw(h.panel, line, basicfont.Face7x13, 8, y, color.White)
		}
		y += 14
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
