package app

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimulationDriver(t *testing.T) (tcell.SimulationScreen, *session, *terminalDriver) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	s := newSession(testConfig())
	return screen, s, newTerminalDriver(screen, s.sceneManager, s.bounds, s.deltaTime)
}

func titleRow(screen tcell.SimulationScreen, width int) string {
	var row strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		row.WriteRune(r)
	}
	return strings.TrimSpace(row.String())
}

func TestTerminalDriverTick(t *testing.T) {
	screen, s, d := newSimulationDriver(t)

	d.tick()

	if s.sceneManager.Frame() != 1 {
		t.Errorf("frame = %d, want 1", s.sceneManager.Frame())
	}
	if got := titleRow(screen, 80); got != "Simulare fabrică - 0/15 persoane au ajuns" {
		t.Errorf("title row = %q", got)
	}
}

func TestTerminalDriverHoldsLastFrame(t *testing.T) {
	screen, s, d := newSimulationDriver(t)

	for i := 0; i < 250; i++ {
		d.tick()
	}

	if s.sceneManager.Frame() != 200 {
		t.Errorf("frame = %d, want 200", s.sceneManager.Frame())
	}
	if got := titleRow(screen, 80); got != "Simulare fabrică - 15/15 persoane au ajuns" {
		t.Errorf("title row = %q", got)
	}
}

func TestTerminalDriverResizeRedrawsStatic(t *testing.T) {
	screen, _, d := newSimulationDriver(t)
	d.tick()

	screen.SetSize(100, 30)
	d.handleEvent(tcell.NewEventResize(100, 30))
	d.tick()

	if w, h := d.frame.Size(); w != 100 || h != 30 {
		t.Errorf("grid size = %dx%d, want 100x30", w, h)
	}
	// 院子描边应出现在新的静态层中
	found := false
	for y := 0; y < 30 && !found; y++ {
		for x := 0; x < 100; x++ {
			if r, _, _ := d.static.Cell(x, y); r == '┌' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("static layer was not redrawn after resize")
	}
}

func TestTerminalDriverQuitKeys(t *testing.T) {
	_, _, d := newSimulationDriver(t)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.handleEvent(tt.ev); got != tt.want {
				t.Errorf("handleEvent(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
