package core

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{Min: Point{X: 2, Y: 3}, Max: Point{X: 10, Y: 8}}

	inside := []Point{{2, 3}, {9, 7}, {5, 5}}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}

	// Max edge is exclusive.
	outside := []Point{{10, 5}, {5, 8}, {1, 3}, {2, 2}}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestRectDimensions(t *testing.T) {
	r := Rect{Min: Point{X: 4, Y: 2}, Max: Point{X: 40, Y: 12}}
	if r.Width() != 36 {
		t.Errorf("Width() = %d, want 36", r.Width())
	}
	if r.Height() != 10 {
		t.Errorf("Height() = %d, want 10", r.Height())
	}
}

func TestToolString(t *testing.T) {
	tests := []struct {
		tool Tool
		want string
	}{
		{ToolNone, "NONE"},
		{ToolMove, "MOVE"},
		{ToolBrush, "BRUSH"},
		{ToolEraser, "ERASER"},
		{ToolPicker, "PICKER"},
		{Tool(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.tool.String(); got != tt.want {
			t.Errorf("Tool(%d).String() = %q, want %q", tt.tool, got, tt.want)
		}
	}
}
