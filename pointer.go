package highlight

import "github.com/go-gl/mathgl/mgl64"

// PointerTracker follows the last pointer position over a Viewport and
// converts it to normalized device coordinates for picking.
type PointerTracker struct {
	viewport *Viewport
	handle   CallbackHandle

	x, y  float64
	valid bool
}

// NewPointerTracker subscribes to pointer moves on v.
func NewPointerTracker(v *Viewport) *PointerTracker {
	p := &PointerTracker{viewport: v}
	p.handle = v.OnPointerMove(func(ev PointerEvent) {
		p.SetPosition(ev.X, ev.Y)
	})
	return p
}

// SetPosition records a client-space position. Down and up events call this
// too so a click without a preceding move still picks at the right place.
func (p *PointerTracker) SetPosition(x, y float64) {
	p.x, p.y = x, y
	p.valid = true
}

// RawPosition returns the last client-space position.
func (p *PointerTracker) RawPosition() (x, y float64, ok bool) {
	return p.x, p.y, p.valid
}

// Position returns the last position in normalized device coordinates:
// x grows right and y grows up, both spanning [-1, 1] over the viewport.
// ok is false before the first event or when the viewport is empty.
func (p *PointerTracker) Position() (mgl64.Vec2, bool) {
	b := p.viewport.Bounds
	if !p.valid || b.Width <= 0 || b.Height <= 0 {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{
		(p.x-b.X)/b.Width*2 - 1,
		-(p.y-b.Y)/b.Height*2 + 1,
	}, true
}

// Dispose stops tracking.
func (p *PointerTracker) Dispose() {
	p.handle.Remove()
	p.handle = CallbackHandle{}
}
