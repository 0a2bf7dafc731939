// Package core contains the fundamental types used throughout the easel canvas layer.
package core

// Point represents a 2D coordinate in the canvas.
type Point struct {
	X, Y int
}

// Rect represents a rectangular area.
type Rect struct {
	Min, Max Point
}

// Width returns the width of the rect.
func (r Rect) Width() int {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rect.
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y
}

// Contains checks if a point is within the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Tool represents an editing tool on the canvas.
type Tool int

const (
	ToolNone   Tool = iota // No tool (sentinel, "nothing saved")
	ToolMove               // Pan/move the canvas
	ToolBrush              // Paint strokes
	ToolEraser             // Erase strokes
	ToolPicker             // Pick a color from the canvas
)

// String returns the tool name for display.
func (t Tool) String() string {
	switch t {
	case ToolNone:
		return "NONE"
	case ToolMove:
		return "MOVE"
	case ToolBrush:
		return "BRUSH"
	case ToolEraser:
		return "ERASER"
	case ToolPicker:
		return "PICKER"
	default:
		return "UNKNOWN"
	}
}

// BoundingBox is the rectangular overlay region on the canvas. Visible and
// Locked are independent of each other; both describe the same overlay.
type BoundingBox struct {
	Area    Rect
	Visible bool
	Locked  bool
}
