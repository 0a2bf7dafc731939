package editor

import (
	"easel/core"
	"easel/store"
)

// State is the canvas tool state shared between the controller and anything
// rendering the canvas.
type State struct {
	ActiveTool core.Tool
	Box        core.BoundingBox
}

// NewStore creates a state store with the given starting tool and an
// initially visible, unlocked bounding box.
func NewStore(initial core.Tool) *store.Store[State] {
	return store.New(State{
		ActiveTool: initial,
		Box:        core.BoundingBox{Visible: true},
	})
}
