package terminal

import (
	"sync"
	"testing"
	"time"

	"easel/editor"
)

// collector gathers emitted events across goroutines.
type collector struct {
	mu     sync.Mutex
	events []editor.KeyEvent
}

func (c *collector) emit(ev editor.KeyEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *collector) snapshot() []editor.KeyEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]editor.KeyEvent(nil), c.events...)
}

func TestHoldTrackerPressStream(t *testing.T) {
	var got collector
	h := NewHoldTracker(40*time.Millisecond, got.emit)

	// Simulate terminal auto-repeat: presses closer together than the window.
	h.Press()
	time.Sleep(10 * time.Millisecond)
	h.Press()
	time.Sleep(10 * time.Millisecond)
	h.Press()

	events := got.snapshot()
	if len(events) != 3 {
		t.Fatalf("expected 3 events during the hold, got %d", len(events))
	}
	if events[0].Repeat || !events[0].Down {
		t.Errorf("first event = %+v, want initial key-down", events[0])
	}
	for i, ev := range events[1:] {
		if !ev.Down || !ev.Repeat {
			t.Errorf("event %d = %+v, want repeat", i+1, ev)
		}
	}
	if !h.Held() {
		t.Error("tracker should report held during the press stream")
	}

	// Silence past the window synthesizes the release.
	time.Sleep(120 * time.Millisecond)
	events = got.snapshot()
	if len(events) != 4 {
		t.Fatalf("expected 4 events after the window elapsed, got %d", len(events))
	}
	if events[3].Down {
		t.Errorf("final event = %+v, want key-up", events[3])
	}
	if h.Held() {
		t.Error("tracker should not report held after the release")
	}
}

func TestHoldTrackerSecondHold(t *testing.T) {
	var got collector
	h := NewHoldTracker(30*time.Millisecond, got.emit)

	h.Press()
	time.Sleep(90 * time.Millisecond)
	h.Press()
	time.Sleep(90 * time.Millisecond)

	events := got.snapshot()
	if len(events) != 4 {
		t.Fatalf("expected down/up/down/up, got %d events: %+v", len(events), events)
	}
	for i, wantDown := range []bool{true, false, true, false} {
		if events[i].Down != wantDown {
			t.Errorf("event %d = %+v, want Down=%v", i, events[i], wantDown)
		}
		if events[i].Repeat {
			t.Errorf("event %d = %+v, no repeats expected", i, events[i])
		}
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	var got collector
	h := NewHoldTracker(time.Hour, got.emit)

	h.Press()
	h.Release()

	events := got.snapshot()
	if len(events) != 2 || events[1].Down {
		t.Fatalf("expected down then up, got %+v", events)
	}

	// Release with nothing held is a no-op.
	h.Release()
	if len(got.snapshot()) != 2 {
		t.Error("idle Release should emit nothing")
	}
}

func TestHoldTrackerStopEmitsNothing(t *testing.T) {
	var got collector
	h := NewHoldTracker(20*time.Millisecond, got.emit)

	h.Press()
	h.Stop()
	time.Sleep(60 * time.Millisecond)

	events := got.snapshot()
	if len(events) != 1 {
		t.Fatalf("expected only the key-down before Stop, got %+v", events)
	}
	if h.Held() {
		t.Error("tracker should not report held after Stop")
	}
}
