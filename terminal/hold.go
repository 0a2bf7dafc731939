package terminal

import (
	"sync"
	"time"

	"easel/editor"
)

// DefaultRepeatWindow is how long the tracker waits after the last press
// before deciding the key was released. Terminal auto-repeat intervals are
// well under this even at slow settings.
const DefaultRepeatWindow = 300 * time.Millisecond

// HoldTracker reconstructs hold-and-release semantics for a single key from a
// terminal's input stream. Terminals report key presses only (repeated while
// the key is held) and never releases, so the tracker treats the first press
// as key-down, presses within the repeat window as repeats, and silence past
// the window as the release.
//
// The down and repeat events are emitted synchronously from Press. The
// synthesized key-up is emitted from a timer goroutine; callers that need
// single-threaded delivery should forward it onto their event loop.
type HoldTracker struct {
	window time.Duration
	emit   func(editor.KeyEvent)

	mu    sync.Mutex
	held  bool
	timer *time.Timer
}

// NewHoldTracker creates a tracker with the given repeat window. A window of
// zero uses DefaultRepeatWindow.
func NewHoldTracker(window time.Duration, emit func(editor.KeyEvent)) *HoldTracker {
	if window <= 0 {
		window = DefaultRepeatWindow
	}
	return &HoldTracker{window: window, emit: emit}
}

// Press records one key press from the terminal.
func (h *HoldTracker) Press() {
	h.mu.Lock()
	if h.held {
		h.timer.Reset(h.window)
		h.mu.Unlock()
		h.emit(editor.KeyEvent{Down: true, Repeat: true})
		return
	}
	h.held = true
	h.timer = time.AfterFunc(h.window, h.expire)
	h.mu.Unlock()
	h.emit(editor.KeyEvent{Down: true})
}

func (h *HoldTracker) expire() {
	h.mu.Lock()
	if !h.held {
		h.mu.Unlock()
		return
	}
	h.held = false
	h.mu.Unlock()
	h.emit(editor.KeyEvent{Down: false})
}

// Release ends the hold immediately, emitting the key-up if one is pending.
// Used when the host knows the hold is over (e.g. shutting down).
func (h *HoldTracker) Release() {
	h.mu.Lock()
	if !h.held {
		h.mu.Unlock()
		return
	}
	h.held = false
	h.timer.Stop()
	h.mu.Unlock()
	h.emit(editor.KeyEvent{Down: false})
}

// Stop cancels any pending hold without emitting anything.
func (h *HoldTracker) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.timer != nil {
		h.timer.Stop()
	}
	h.held = false
}

// Held reports whether a hold is currently in progress.
func (h *HoldTracker) Held() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.held
}
