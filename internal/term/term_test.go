package term

import (
	"image/color"
	"testing"

	"cell-smoother/internal/core"
	"cell-smoother/internal/sims/smoother"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func background(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestRendererUsesPalette(t *testing.T) {
	s := newScreen(t, 10, 4)
	palette := []color.RGBA{{R: 0, G: 0, B: 0, A: 255}, {R: 10, G: 20, B: 30, A: 255}}
	r := NewRenderer(palette)

	r.Draw(s, []uint8{0, 1, 5, 0}, core.Size{W: 2, H: 2})

	want := tcell.NewRGBColor(10, 20, 30)
	for _, pos := range [][2]int{{2, 0}, {3, 0}, {0, 1}, {1, 1}} {
		if got := background(s, pos[0], pos[1]); got != want {
			t.Fatalf("cell at %v: got background %v, want %v", pos, got, want)
		}
	}
	if got := background(s, 0, 0); got != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("zero cell: got background %v", got)
	}
}

func TestRendererBinaryWithoutPalette(t *testing.T) {
	s := newScreen(t, 4, 1)
	NewRenderer(nil).Draw(s, []uint8{3, 0}, core.Size{W: 2, H: 1})

	if got := background(s, 0, 0); got != tcell.ColorWhite {
		t.Fatalf("expected white, got %v", got)
	}
	if got := background(s, 2, 0); got != tcell.ColorBlack {
		t.Fatalf("expected black, got %v", got)
	}
}

func TestRendererClipsToScreen(t *testing.T) {
	s := newScreen(t, 3, 1)
	// must not panic when the grid is larger than the screen
	NewRenderer(nil).Draw(s, make([]uint8, 16), core.Size{W: 4, H: 4})
}

func newHost(t *testing.T) *Host {
	t.Helper()
	cfg := smoother.DefaultConfig()
	cfg.Width = 6
	cfg.Height = 4
	sim, err := smoother.NewSim(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(1)
	return NewHost(sim, 1000, 1)
}

func TestHostKeys(t *testing.T) {
	h := newHost(t)

	if h.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !h.paused {
		t.Fatal("space should pause")
	}
	if h.Tick() {
		t.Fatal("paused host stepped")
	}

	h.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if !h.Tick() || h.Steps() != 1 {
		t.Fatalf("single step expected, steps=%d", h.Steps())
	}

	h.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if h.Steps() != 0 {
		t.Fatalf("reset should clear steps, got %d", h.Steps())
	}

	if !h.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !h.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestHostStopsAtLimit(t *testing.T) {
	h := newHost(t)
	h.Limit = 2

	if !h.Tick() {
		t.Fatal("first tick should step")
	}
	h.tickOnce = true
	if !h.Tick() {
		t.Fatal("second tick should step")
	}
	if h.Tick() {
		t.Fatal("host stepped past its limit")
	}
	if !h.paused {
		t.Fatal("host should pause at its limit")
	}
}

func TestHostSingleStepRespectsLimit(t *testing.T) {
	h := newHost(t)
	h.Limit = 1

	if !h.Tick() {
		t.Fatal("first tick should step")
	}
	h.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if h.Tick() {
		t.Fatal("single step went past the limit")
	}
	if h.Steps() != 1 {
		t.Fatalf("expected 1 step, got %d", h.Steps())
	}
}

func TestHostDrawWritesStatusLine(t *testing.T) {
	h := newHost(t)
	s := newScreen(t, 200, 6)
	h.Draw(s)

	mainc, _, _, _ := s.GetContent(0, 4)
	if mainc != 's' {
		t.Fatalf("expected status line to start with the sim name, got %q", mainc)
	}
}
