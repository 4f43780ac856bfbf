package main

import (
	"log"
	"strconv"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/colormap/internal/app"
	"github.com/irfansharif/colormap/internal/bar"
	"github.com/irfansharif/colormap/internal/colorspace"
	"github.com/irfansharif/colormap/internal/geom"
	"github.com/irfansharif/colormap/internal/palette"
)

const repeatInterval = 60 * time.Millisecond // time between successive shifts while [ or ] is held
const gainStep = 1.1

// EventHandlers manages all event handling for the preview window.
type EventHandlers struct {
	window      *glfw.Window
	application *app.App

	// [ and ] shift the offset, continuously while held.
	shiftKeyHeld  bool
	shiftDelta    int
	lastShiftTime time.Time

	// Index of the swatch under the cursor, or -1.
	hovered int

	// Digits typed before pressing N set the sample count.
	inputBuffer string
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(window *glfw.Window, application *app.App) *EventHandlers {
	eh := &EventHandlers{
		window:        window,
		application:   application,
		hovered:       -1,
		lastShiftTime: time.Now(),
	}
	eh.SetupCallbacks()
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks() {
	eh.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(key, action, mods)
	})
	eh.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		eh.handleCursorPos(xpos, ypos)
	})
	eh.window.SetScrollCallback(func(_ *glfw.Window, _, delta float64) {
		eh.scaleGain(delta)
	})
	eh.window.SetFramebufferSizeCallback(func(_ *glfw.Window, _, _ int) {
		eh.application.Invalidate()
	})
}

// handleKey handles keyboard input events.
func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press {
		if key >= glfw.Key0 && key <= glfw.Key9 {
			eh.inputBuffer += string(rune('0' + int(key-glfw.Key0)))
			return
		}
		if key == glfw.KeyEscape {
			eh.inputBuffer = ""
			return
		}
	}

	shift := (mods & glfw.ModShift) != 0
	view := eh.application.View

	switch key {
	case glfw.KeyLeftBracket:
		eh.handleShiftKeys(action, -1)
		return
	case glfw.KeyRightBracket:
		eh.handleShiftKeys(action, 1)
		return
	}

	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	switch key {
	case glfw.KeyRight:
		eh.application.Step(1)
	case glfw.KeyLeft:
		eh.application.Step(-1)
	case glfw.KeyUp:
		eh.scaleGain(1)
	case glfw.KeyDown:
		eh.scaleGain(-1)
	case glfw.KeyR:
		if shift {
			view.SetRepeat(view.Repeat - 1)
		} else {
			view.SetRepeat(view.Repeat + 1)
		}
	case glfw.KeyG:
		if shift {
			view.SetGamma(view.Gamma / gainStep)
		} else {
			view.SetGamma(view.Gamma * gainStep)
		}
	case glfw.KeyM:
		if action == glfw.Press {
			view.Mono = !view.Mono
		}
	case glfw.KeyI:
		if action == glfw.Press {
			if view.Illuminant == colorspace.D65 {
				view.Illuminant = colorspace.D50
			} else {
				view.Illuminant = colorspace.D65
			}
		}
	case glfw.KeyBackspace:
		view.Reset()
	case glfw.KeyN:
		eh.handleSamplesKey()
	default:
		return
	}
	eh.inputBuffer = ""
	eh.application.Invalidate()
}

// handleSamplesKey applies the typed number as the new sample count.
func (eh *EventHandlers) handleSamplesKey() {
	input := eh.inputBuffer
	eh.inputBuffer = ""
	if input == "" {
		return
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 2 {
		log.Printf("WARNING: ignoring sample count %q", input)
		return
	}
	eh.application.View.Samples = n
}

// handleShiftKeys handles [ and ] presses and releases for continuous
// shifting.
func (eh *EventHandlers) handleShiftKeys(action glfw.Action, delta int) {
	switch action {
	case glfw.Press:
		eh.shiftKeyHeld = true
		eh.shiftDelta = delta
		eh.performShift(delta)
		eh.lastShiftTime = time.Now()

	case glfw.Release:
		eh.shiftKeyHeld = false

	case glfw.Repeat:
		// Ignore repeat events - continuous shifting is timed by
		// handleContinuousShift.
	}
}

func (eh *EventHandlers) performShift(delta int) {
	eh.application.View.Shift(delta)
	eh.application.Invalidate()
}

// handleContinuousShift keeps shifting while [ or ] is held.
func (eh *EventHandlers) handleContinuousShift() {
	if !eh.shiftKeyHeld {
		return // nothing to do
	}

	now := time.Now()
	if now.Sub(eh.lastShiftTime) < repeatInterval {
		return // not enough time has passed since the last shift
	}

	eh.performShift(eh.shiftDelta)
	eh.lastShiftTime = now
}

func (eh *EventHandlers) scaleGain(delta float64) {
	view := eh.application.View
	if delta > 0 {
		view.SetGain(view.Gain * gainStep)
	} else if delta < 0 {
		view.SetGain(view.Gain / gainStep)
	}
	eh.application.Invalidate()
}

// handleCursorPos tracks which swatch is under the cursor.
func (eh *EventHandlers) handleCursorPos(xpos, ypos float64) {
	cw, ch := eh.window.GetFramebufferSize()
	ww, wh := eh.window.GetSize()
	if cw <= 0 || ch <= 0 || ww <= 0 || wh <= 0 {
		return // minimized
	}
	// Cursor positions are in screen coordinates, which differ from
	// framebuffer pixels on high-DPI displays. Go through NDC.
	fromNDC, err := geom.ScreenToNDC(cw, ch).Inv()
	if err != nil {
		log.Printf("WARNING: %v", err)
		return
	}
	p := fromNDC.Mul(geom.ScreenToNDC(ww, wh)).MulPoint(geom.MakePoint(xpos, ypos))

	tbl := eh.application.Table()
	i := bar.Layout(cw, ch).ColumnAt(p, len(tbl))
	if i == eh.hovered {
		return
	}
	eh.hovered = i
	if i >= 0 {
		runtimeLogger.Printf("sample %d: %s", i, palette.Hex(tbl[i]))
	}
}

// hoverLabel describes the swatch under the cursor for the window title.
func (eh *EventHandlers) hoverLabel() string {
	tbl := eh.application.Table()
	if eh.hovered < 0 || eh.hovered >= len(tbl) {
		return ""
	}
	return " [" + strconv.Itoa(eh.hovered) + ": " + palette.Hex(tbl[eh.hovered]) + "]"
}
