package highlight

// PointerEventType identifies the kind of pointer event.
type PointerEventType uint8

const (
	PointerDown PointerEventType = iota
	PointerUp
	PointerMove
)

// String returns the event type name.
func (t PointerEventType) String() string {
	switch t {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in viewport client coordinates.
type PointerEvent struct {
	Type      PointerEventType
	Button    MouseButton
	X, Y      float64
	Modifiers KeyModifiers
}

// Viewport is the on-screen rectangle the scene renders into. It delivers
// pointer events to subscribers, from a platform adapter or from its own
// inject queue.
type Viewport struct {
	// Bounds is the client-space rectangle of the viewport.
	Bounds Rect

	down Event[PointerEvent]
	up   Event[PointerEvent]
	move Event[PointerEvent]

	injectQueue []PointerEvent
	injectMods  KeyModifiers
	testRunner  *TestRunner
}

// NewViewport creates a viewport covering bounds.
func NewViewport(bounds Rect) *Viewport {
	return &Viewport{Bounds: bounds}
}

// Aspect returns width over height, or 1 for an empty viewport.
func (v *Viewport) Aspect() float64 {
	if v.Bounds.Width <= 0 || v.Bounds.Height <= 0 {
		return 1
	}
	return v.Bounds.Width / v.Bounds.Height
}

// OnPointerDown registers a handler for pointer presses.
func (v *Viewport) OnPointerDown(fn func(PointerEvent)) CallbackHandle {
	return v.down.Add(fn)
}

// OnPointerUp registers a handler for pointer releases.
func (v *Viewport) OnPointerUp(fn func(PointerEvent)) CallbackHandle {
	return v.up.Add(fn)
}

// OnPointerMove registers a handler for pointer moves.
func (v *Viewport) OnPointerMove(fn func(PointerEvent)) CallbackHandle {
	return v.move.Add(fn)
}

// Dispatch delivers ev to the handlers of its type.
func (v *Viewport) Dispatch(ev PointerEvent) {
	switch ev.Type {
	case PointerDown:
		v.down.Trigger(ev)
	case PointerUp:
		v.up.Trigger(ev)
	case PointerMove:
		v.move.Trigger(ev)
	}
}

// SetTestRunner attaches a TestRunner. Its steps are executed from Update.
func (v *Viewport) SetTestRunner(runner *TestRunner) {
	v.testRunner = runner
}

// Update steps the test runner, then delivers at most one injected event.
// It reports whether an injected event was delivered, in which case real
// input should be skipped this frame.
func (v *Viewport) Update() bool {
	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	return v.processInjectedInput()
}
