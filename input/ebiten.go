// Package input feeds Ebitengine mouse, touch and keyboard state into a
// highlight.Viewport.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/highlight"
)

// EbitenSource polls Ebitengine once per frame and dispatches pointer edges
// to a Viewport. The mouse and the first touch both drive the pointer; the
// mouse wins while a button is held.
type EbitenSource struct {
	viewport *highlight.Viewport

	down     bool
	button   highlight.MouseButton
	lastX    float64
	lastY    float64
	havePos  bool
	touchID  ebiten.TouchID
	touching bool
	touchBuf []ebiten.TouchID
}

// NewEbitenSource creates a source dispatching to v.
func NewEbitenSource(v *highlight.Viewport) *EbitenSource {
	return &EbitenSource{viewport: v}
}

// Update reads the current input state and dispatches the resulting events.
// Call it from ebiten.Game.Update. Real input is skipped on frames where the
// viewport delivered an injected event.
func (s *EbitenSource) Update() {
	if s.viewport.Update() {
		return
	}
	mods := readModifiers()
	if s.processTouch(mods) {
		return
	}
	s.processMouse(mods)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() highlight.KeyModifiers {
	var mods highlight.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= highlight.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= highlight.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= highlight.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= highlight.ModMeta
	}
	return mods
}

// processMouse handles the mouse pointer.
func (s *EbitenSource) processMouse(mods highlight.KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	// Keep the button captured at press time until every button is up.
	var pressed bool
	var button highlight.MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = highlight.MouseButtonLeft
		case right:
			button = highlight.MouseButtonRight
		default:
			button = highlight.MouseButtonMiddle
		}
	}
	s.processPointer(x, y, pressed, button, mods)
}

// processTouch drives the pointer from the first active touch. It reports
// whether touch input was handled this frame.
func (s *EbitenSource) processTouch(mods highlight.KeyModifiers) bool {
	if s.touching {
		if inpututil.IsTouchJustReleased(s.touchID) {
			s.touching = false
			s.processPointer(s.lastX, s.lastY, false, highlight.MouseButtonLeft, mods)
			return true
		}
		tx, ty := ebiten.TouchPosition(s.touchID)
		s.processPointer(float64(tx), float64(ty), true, highlight.MouseButtonLeft, mods)
		return true
	}
	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	if len(s.touchBuf) == 0 {
		return false
	}
	s.touchID = s.touchBuf[0]
	s.touching = true
	tx, ty := ebiten.TouchPosition(s.touchID)
	s.processPointer(float64(tx), float64(ty), true, highlight.MouseButtonLeft, mods)
	return true
}

// processPointer turns level state into down/up/move edges.
func (s *EbitenSource) processPointer(x, y float64, pressed bool, button highlight.MouseButton, mods highlight.KeyModifiers) {
	if !s.viewport.Bounds.Contains(x, y) && !s.down {
		return
	}
	moved := !s.havePos || x != s.lastX || y != s.lastY
	s.lastX, s.lastY, s.havePos = x, y, true

	switch {
	case pressed && !s.down:
		s.down = true
		s.button = button
		s.viewport.Dispatch(highlight.PointerEvent{
			Type: highlight.PointerDown, Button: button, X: x, Y: y, Modifiers: mods,
		})
	case !pressed && s.down:
		s.down = false
		s.viewport.Dispatch(highlight.PointerEvent{
			Type: highlight.PointerUp, Button: s.button, X: x, Y: y, Modifiers: mods,
		})
	case moved:
		s.viewport.Dispatch(highlight.PointerEvent{
			Type: highlight.PointerMove, Button: s.button, X: x, Y: y, Modifiers: mods,
		})
	}
}
