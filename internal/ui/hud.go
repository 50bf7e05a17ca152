//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"cell-smoother/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 14
	hudPadding    = 8
)

// HUD renders the parameter panel on top of the simulation view. H toggles
// it.
type HUD struct {
	sim      core.Sim
	visible  bool
	title    string
	lines    []string
	paused   bool
	panel    *ebiten.Image
	panelW   int
	panelH   int
	bgColour color.Color
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{
		sim:      sim,
		visible:  true,
		title:    buildTitle(sim),
		bgColour: color.RGBA{R: 16, G: 16, B: 20, A: 200},
	}
}

// Update refreshes the cached snapshot and handles the toggle key.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.paused = paused
	h.lines = h.lines[:0]
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.lines = append(h.lines, provider.Parameters().Lines()...)
	}
}

// Draw paints the panel in the top-left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	rows := append([]string{h.header()}, h.lines...)
	w := 0
	for _, r := range rows {
		w = max(w, len(r)*basicfont.Face7x13.Advance)
	}
	w += 2 * hudPadding
	ht := len(rows)*hudLineHeight + 2*hudPadding
	if h.panel == nil || h.panelW != w || h.panelH != ht {
		h.panel = ebiten.NewImage(w, ht)
		h.panelW, h.panelH = w, ht
	}
	h.panel.Fill(h.bgColour)
	for i, r := range rows {
		text.Draw(h.panel, r, basicfont.Face7x13, hudPadding, hudPadding+(i+1)*hudLineHeight-3, color.White)
	}
	screen.DrawImage(h.panel, nil)
}

func (h *HUD) header() string {
	if h.paused {
		return h.title + " (paused)"
	}
	return h.title
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}
