package highlight

// SetInjectModifiers sets the modifier keys reported by subsequently injected
// events, so scripted input can exercise multi-select.
func (v *Viewport) SetInjectModifiers(mods KeyModifiers) {
	v.injectMods = mods
}

// InjectPress queues a left-button press at the given client coordinates.
// The event is delivered on the next Update.
func (v *Viewport) InjectPress(x, y float64) {
	v.inject(PointerDown, x, y)
}

// InjectMove queues a pointer move at the given client coordinates. Between
// InjectPress and InjectRelease it simulates a drag, otherwise a hover.
func (v *Viewport) InjectMove(x, y float64) {
	v.inject(PointerMove, x, y)
}

// InjectRelease queues a left-button release at the given client coordinates.
func (v *Viewport) InjectRelease(x, y float64) {
	v.inject(PointerUp, x, y)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (v *Viewport) InjectClick(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (v *Viewport) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		v.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	v.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (v *Viewport) Pending() int {
	return len(v.injectQueue)
}

func (v *Viewport) inject(typ PointerEventType, x, y float64) {
	v.injectQueue = append(v.injectQueue, PointerEvent{
		Type:      typ,
		Button:    MouseButtonLeft,
		X:         x,
		Y:         y,
		Modifiers: v.injectMods,
	})
}

// processInjectedInput pops one event from the inject queue and dispatches it.
func (v *Viewport) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	ev := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]
	v.Dispatch(ev)
	return true
}
