// Package term hosts a simulation in a terminal, two columns per cell.
package term

import (
	"image/color"
	"time"

	"cell-smoother/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Renderer paints cell values as background colours.
type Renderer struct {
	styles []tcell.Style
	on     tcell.Style
	off    tcell.Style
}

// NewRenderer builds one style per palette entry. An empty palette renders
// non-zero cells white and zero cells black.
func NewRenderer(palette []color.RGBA) *Renderer {
	r := &Renderer{
		on:  tcell.StyleDefault.Background(tcell.ColorWhite),
		off: tcell.StyleDefault.Background(tcell.ColorBlack),
	}
	r.styles = make([]tcell.Style, len(palette))
	for i, c := range palette {
		r.styles[i] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return r
}

func (r *Renderer) style(v uint8) tcell.Style {
	if len(r.styles) == 0 {
		if v != 0 {
			return r.on
		}
		return r.off
	}
	return r.styles[min(int(v), len(r.styles)-1)]
}

// Draw paints cells (row-major, size.W wide) starting at the top-left corner.
// Cells outside the screen are skipped.
func (r *Renderer) Draw(screen tcell.Screen, cells []uint8, size core.Size) {
	sw, sh := screen.Size()
	for y := 0; y < size.H && y < sh; y++ {
		for x := 0; x < size.W && 2*x+1 < sw; x++ {
			st := r.style(cells[y*size.W+x])
			screen.SetContent(2*x, y, ' ', nil, st)
			screen.SetContent(2*x+1, y, ' ', nil, st)
		}
	}
}

// DrawText writes line at row y, clearing the rest of the row.
func DrawText(screen tcell.Screen, y int, line string) {
	sw, _ := screen.Size()
	x := 0
	for _, ch := range line {
		if x >= sw {
			break
		}
		screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
		x++
	}
	for ; x < sw; x++ {
		screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

type paletteProvider interface {
	Palette() []color.RGBA
}

type stableReporter interface {
	Stable() bool
}

// Host drives a Sim at a fixed tick rate and redraws it after every step.
type Host struct {
	sim      core.Sim
	renderer *Renderer
	timer    *core.FixedStep
	seed     int64

	Limit       int
	UntilStable bool

	paused   bool
	tickOnce bool
	steps    int
}

// NewHost prepares a host for sim ticking at tps steps per second.
func NewHost(sim core.Sim, tps int, seed int64) *Host {
	var palette []color.RGBA
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	return &Host{
		sim:      sim,
		renderer: NewRenderer(palette),
		timer:    core.NewFixedStep(tps),
		seed:     seed,
	}
}

// Steps returns the number of steps taken since the last reset.
func (h *Host) Steps() int { return h.steps }

// HandleKey applies a key press and reports whether the host should exit.
func (h *Host) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		h.paused = false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			h.paused = !h.paused
		case 'n':
			h.tickOnce = true
		case 'r':
			h.reset(h.seed)
		case 's':
			h.reset(time.Now().UnixNano())
		}
	}
	return false
}

func (h *Host) reset(seed int64) {
	h.seed = seed
	h.sim.Reset(seed)
	h.steps = 0
	h.tickOnce = false
}

// Tick advances the sim when the timer allows it and reports whether a step
// was taken.
func (h *Host) Tick() bool {
	if h.Limit > 0 && h.steps >= h.Limit {
		h.paused = true
		h.tickOnce = false
		return false
	}
	if h.UntilStable {
		if s, ok := h.sim.(stableReporter); ok && s.Stable() {
			h.paused = true
		}
	}
	if !h.tickOnce && (h.paused || !h.timer.ShouldStep()) {
		return false
	}
	h.sim.Step()
	h.steps++
	h.tickOnce = false
	return true
}

// Draw renders the grid and a status line below it.
func (h *Host) Draw(screen tcell.Screen) {
	size := h.sim.Size()
	h.renderer.Draw(screen, h.sim.Cells(), size)
	status := h.sim.Name()
	if p, ok := h.sim.(core.ParameterProvider); ok {
		for _, g := range p.Parameters().Groups {
			for _, param := range g.Params {
				status += "  " + param.Label + "=" + param.Value
			}
		}
	}
	if h.paused {
		status += "  [paused]"
	}
	DrawText(screen, size.H, status)
	screen.Show()
}

// Run owns screen until the user quits. The caller initializes and
// finalizes the screen.
func (h *Host) Run(screen tcell.Screen) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	screen.Clear()
	h.Draw(screen)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if h.HandleKey(ev) {
					return nil
				}
				h.Draw(screen)
			case *tcell.EventResize:
				screen.Sync()
				h.Draw(screen)
			}
		case <-frame.C:
			if h.Tick() {
				h.Draw(screen)
			}
		}
	}
}
