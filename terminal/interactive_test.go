package terminal

import (
	"strings"
	"testing"

	"easel/config"
	"easel/core"
	"easel/editor"

	"github.com/gdamore/tcell/v2"
)

func TestResolveBindings(t *testing.T) {
	keys, err := resolveBindings(config.Default().Keys)
	if err != nil {
		t.Fatalf("resolveBindings failed on defaults: %v", err)
	}

	if keys.override != ' ' {
		t.Errorf("override key = %q, want space", keys.override)
	}
	if keys.tools['b'] != core.ToolBrush {
		t.Errorf("'b' bound to %v, want BRUSH", keys.tools['b'])
	}
	if keys.tools['m'] != core.ToolMove {
		t.Errorf("'m' bound to %v, want MOVE", keys.tools['m'])
	}
	if keys.quit != 'q' {
		t.Errorf("quit key = %q, want 'q'", keys.quit)
	}
}

func TestResolveBindingsRejectsBadName(t *testing.T) {
	k := config.Default().Keys
	k.Eraser = "shift+e"
	if _, err := resolveBindings(k); err == nil {
		t.Error("expected an error for an unparseable key name")
	}
}

func TestStatusLine(t *testing.T) {
	keys := config.Default().Keys

	s := editor.State{ActiveTool: core.ToolBrush, Box: core.BoundingBox{Visible: true}}
	line := StatusLine(s, keys)
	if !strings.Contains(line, "BRUSH") {
		t.Errorf("status %q should name the active tool", line)
	}
	if !strings.Contains(line, "box shown") {
		t.Errorf("status %q should report the box as shown", line)
	}

	s.Box.Locked = true
	s.Box.Visible = false
	line = StatusLine(s, keys)
	if !strings.Contains(line, "box hidden+locked") {
		t.Errorf("status %q should report hidden+locked", line)
	}
}

func TestDrawOverlay(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)

	s := editor.State{
		ActiveTool: core.ToolMove,
		Box: core.BoundingBox{
			Area:    core.Rect{Min: core.Point{X: 2, Y: 2}, Max: core.Point{X: 20, Y: 8}},
			Visible: true,
		},
	}
	draw(screen, s, config.Default().Keys)

	cell := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}

	if cell(2, 2) != '┌' || cell(19, 7) != '┘' {
		t.Errorf("overlay corners not drawn: got %q and %q", cell(2, 2), cell(19, 7))
	}
	if cell(10, 2) != '─' {
		t.Errorf("overlay top border not drawn: got %q", cell(10, 2))
	}

	// Hidden box leaves the canvas empty.
	s.Box.Visible = false
	draw(screen, s, config.Default().Keys)
	if cell(2, 2) == '┌' {
		t.Error("overlay still drawn while hidden")
	}
}
