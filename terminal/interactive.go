// Package terminal is the tcell front end for the canvas tool controller: it
// owns the screen, translates key presses through the keymap, and renders the
// bounding-box overlay and tool status line.
package terminal

import (
	"fmt"
	"time"

	"easel/config"
	"easel/core"
	"easel/editor"
	"easel/store"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// overrideKeyUp is posted onto the tcell event queue when the hold tracker
// decides the override key was released, so the controller still runs on the
// event loop goroutine.
type overrideKeyUp struct {
	when time.Time
}

func (e *overrideKeyUp) When() time.Time {
	return e.when
}

// keyBindings is the keymap resolved to runes.
type keyBindings struct {
	override   rune
	tools      map[rune]core.Tool
	boxVisible rune
	boxLock    rune
	quit       rune
}

func resolveBindings(k config.Keymap) (keyBindings, error) {
	b := keyBindings{tools: make(map[rune]core.Tool)}

	var err error
	parse := func(name string) rune {
		r, e := config.ParseKey(name)
		if e != nil && err == nil {
			err = e
		}
		return r
	}

	b.override = parse(k.Override)
	b.tools[parse(k.Brush)] = core.ToolBrush
	b.tools[parse(k.Eraser)] = core.ToolEraser
	b.tools[parse(k.Picker)] = core.ToolPicker
	b.tools[parse(k.Move)] = core.ToolMove
	b.boxVisible = parse(k.ToggleBoxVisible)
	b.boxLock = parse(k.ToggleBoxLock)
	b.quit = parse(k.Quit)
	return b, err
}

// Run starts the interactive loop and blocks until the user quits.
func Run(ctrl *editor.Controller, st *store.Store[editor.State], cfg config.Config, log zerolog.Logger) error {
	keys, err := resolveBindings(cfg.Keys)
	if err != nil {
		return fmt.Errorf("resolve keymap: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Down and repeat events come straight off the event loop; the
	// synthesized key-up arrives on a timer goroutine and is posted back
	// onto the queue so the controller stays single-threaded.
	hold := NewHoldTracker(DefaultRepeatWindow, func(ev editor.KeyEvent) {
		if ev.Down {
			ctrl.HandleOverrideKey(ev)
			return
		}
		screen.PostEvent(&overrideKeyUp{when: time.Now()})
	})
	defer hold.Stop()

	// Log tool changes through an equality-gated view so held-key repeats
	// and unrelated flag flips don't spam the log.
	activeTool := store.DeriveComparable(st, func(s editor.State) core.Tool {
		return s.ActiveTool
	})
	activeTool.Subscribe(func(t core.Tool) {
		log.Debug().Stringer("tool", t).Msg("active tool changed")
	})

	for {
		draw(screen, st.Get(), cfg.Keys)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *overrideKeyUp:
			ctrl.HandleOverrideKey(editor.KeyEvent{Down: false})

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
				return nil
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			r := ev.Rune()
			switch {
			case r == keys.override:
				hold.Press()
			case r == keys.boxVisible:
				ctrl.ToggleBoundingBoxVisible()
			case r == keys.boxLock:
				ctrl.ToggleBoundingBoxLock()
			case r == keys.quit:
				return nil
			default:
				if tool, ok := keys.tools[r]; ok {
					ctrl.SetActiveTool(tool)
				}
			}
		}
	}
}

var (
	styleBox    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleLocked = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// draw renders the canvas area, the bounding-box overlay, and the status bar.
func draw(screen tcell.Screen, s editor.State, keys config.Keymap) {
	screen.Clear()
	width, height := screen.Size()

	if s.Box.Visible {
		drawBox(screen, overlayRect(s.Box, width, height-1), s.Box.Locked)
	}

	status := []rune(StatusLine(s, keys))
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		screen.SetContent(x, height-1, r, nil, styleStatus)
	}

	screen.Show()
}

// overlayRect clamps the configured overlay area to the drawable region,
// falling back to a centered rect when no area is set.
func overlayRect(box core.BoundingBox, width, height int) core.Rect {
	r := box.Area
	if r.Width() <= 0 || r.Height() <= 0 {
		r = core.Rect{
			Min: core.Point{X: width / 4, Y: height / 4},
			Max: core.Point{X: width * 3 / 4, Y: height * 3 / 4},
		}
	}
	if r.Max.X > width {
		r.Max.X = width
	}
	if r.Max.Y > height {
		r.Max.Y = height
	}
	return r
}

func drawBox(screen tcell.Screen, r core.Rect, locked bool) {
	if r.Width() < 2 || r.Height() < 2 {
		return
	}
	style := styleBox
	if locked {
		style = styleLocked
	}

	x0, y0 := r.Min.X, r.Min.Y
	x1, y1 := r.Max.X-1, r.Max.Y-1

	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, '─', nil, style)
		screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, '│', nil, style)
		screen.SetContent(x1, y, '│', nil, style)
	}
	screen.SetContent(x0, y0, '┌', nil, style)
	screen.SetContent(x1, y0, '┐', nil, style)
	screen.SetContent(x0, y1, '└', nil, style)
	screen.SetContent(x1, y1, '┘', nil, style)

	if locked {
		// Lock marker in the top border.
		screen.SetContent(x0+2, y0, '⊠', nil, style)
	}
}

// StatusLine formats the status bar for the given state.
func StatusLine(s editor.State, keys config.Keymap) string {
	box := "box hidden"
	if s.Box.Visible {
		box = "box shown"
	}
	if s.Box.Locked {
		box += "+locked"
	}
	return fmt.Sprintf(" TOOL: %s │ %s │ hold %s=move  %s/%s box  %s quit",
		s.ActiveTool, box,
		keys.Override,
		keys.ToggleBoxVisible, keys.ToggleBoxLock,
		keys.Quit)
}
