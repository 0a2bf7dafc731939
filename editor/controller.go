// Package editor implements the tool-state layer of the canvas: which tool is
// active, the hold-to-override behavior on the designated override key, and
// the bounding-box overlay flags.
package editor

import (
	"easel/core"
	"easel/store"

	"github.com/rs/zerolog"
)

// KeyEvent is a raw key transition for the override key. Down is true for a
// press and false for a release; Repeat marks auto-repeat presses while the
// key is held.
type KeyEvent struct {
	Down   bool
	Repeat bool
}

// Controller tracks the active editing tool and applies the momentary
// override: holding the override key switches to a fixed tool (normally
// move), and releasing it restores whatever was active before.
//
// The controller owns its state exclusively and must be driven from a single
// goroutine, the same one delivering the host's input events.
type Controller struct {
	store        *store.Store[State]
	overrideTool core.Tool

	// Override cycle state. savedTool is the tool to restore on release, or
	// ToolNone when the override began with the override tool already active.
	overriding bool
	savedTool  core.Tool

	log zerolog.Logger
}

// NewController creates a controller over the given state store. overrideTool
// is the fixed tool activated while the override key is held.
func NewController(st *store.Store[State], overrideTool core.Tool, log zerolog.Logger) *Controller {
	return &Controller{
		store:        st,
		overrideTool: overrideTool,
		savedTool:    core.ToolNone,
		log:          log,
	}
}

// State returns the current canvas tool state.
func (c *Controller) State() State {
	return c.store.Get()
}

// SetActiveTool selects a tool directly. If an override is currently held,
// the selection lands in the saved slot instead, so releasing the override
// key restores the user's latest choice rather than the pre-override tool.
func (c *Controller) SetActiveTool(tool core.Tool) {
	if c.overriding {
		if tool == c.overrideTool {
			// Choosing the override tool itself means there is nothing to
			// restore on release.
			c.savedTool = core.ToolNone
		} else {
			c.savedTool = tool
		}
		c.log.Debug().Stringer("tool", tool).Msg("tool selected under override, deferred")
		return
	}
	c.store.Update(func(s State) State {
		s.ActiveTool = tool
		return s
	})
	c.log.Debug().Stringer("tool", tool).Msg("tool selected")
}

// HandleOverrideKey runs the override state machine for one key transition.
//
// A first key-down saves the active tool and switches to the override tool;
// auto-repeat downs while held are discarded; key-up restores the saved tool
// if one was recorded. A key-up with no override in progress is a no-op.
func (c *Controller) HandleOverrideKey(ev KeyEvent) {
	if ev.Down {
		c.keyDown(ev.Repeat)
	} else {
		c.keyUp()
	}
}

func (c *Controller) keyDown(repeat bool) {
	if c.overriding || repeat {
		// At most one override at a time; repeats never stack or re-save.
		return
	}
	c.overriding = true

	active := c.store.Get().ActiveTool
	if active == c.overrideTool {
		// Already on the override tool through other means: nothing to save,
		// nothing to restore later.
		c.savedTool = core.ToolNone
		return
	}

	c.savedTool = active
	c.store.Update(func(s State) State {
		s.ActiveTool = c.overrideTool
		return s
	})
	c.log.Debug().Stringer("saved", c.savedTool).Stringer("tool", c.overrideTool).Msg("override engaged")
}

func (c *Controller) keyUp() {
	if !c.overriding {
		// Release with no override in progress (e.g. the press happened
		// before we were listening). Tolerated, nothing to do.
		return
	}
	c.overriding = false

	restore := c.savedTool
	c.savedTool = core.ToolNone
	if restore == core.ToolNone || restore == c.overrideTool {
		return
	}

	c.store.Update(func(s State) State {
		s.ActiveTool = restore
		return s
	})
	c.log.Debug().Stringer("tool", restore).Msg("override released")
}

// ToggleBoundingBoxLock flips the bounding box lock flag.
func (c *Controller) ToggleBoundingBoxLock() {
	c.store.Update(func(s State) State {
		s.Box.Locked = !s.Box.Locked
		return s
	})
}

// SetBoundingBoxVisible sets the bounding box visibility flag.
func (c *Controller) SetBoundingBoxVisible(visible bool) {
	c.store.Update(func(s State) State {
		s.Box.Visible = visible
		return s
	})
}

// ToggleBoundingBoxVisible flips the bounding box visibility flag.
func (c *Controller) ToggleBoundingBoxVisible() {
	c.SetBoundingBoxVisible(!c.store.Get().Box.Visible)
}
