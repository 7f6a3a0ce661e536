package highlight

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// testScene is a 100x100 viewport looking down -z from (0, 0, 10) at two unit
// boxes on fragment "f": item 1 at the origin and item 2 behind it at z=-3.
// Item 1 is also drawn by fragment "g" at x=3, and fragment "h" draws item 3
// at x=-3.
type testScene struct {
	world   *World
	vp      *Viewport
	cam     *Camera
	model   *Model
	f, g, h *Fragment
}

func newTestScene(t *testing.T) *testScene {
	t.Helper()
	w := NewWorld()
	vp := NewViewport(Rect{Width: 100, Height: 100})
	cam := NewCamera(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, 1)
	w.SetViewport(vp)
	w.SetCamera(cam)

	f := NewFragment("f", NewBoxGeometry(1, 1, 1))
	f.AddInstance(1, mgl64.Ident4())
	f.AddInstance(2, mgl64.Translate3D(0, 0, -3))
	g := NewFragment("g", NewBoxGeometry(1, 1, 1))
	g.AddInstance(1, mgl64.Translate3D(3, 0, 0))
	h := NewFragment("h", NewBoxGeometry(1, 1, 1))
	h.AddInstance(3, mgl64.Translate3D(-3, 0, 0))

	m := NewModel("m")
	for _, frag := range []*Fragment{f, g, h} {
		if err := m.AddFragment(frag); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.AddModel(m); err != nil {
		t.Fatal(err)
	}
	return &testScene{world: w, vp: vp, cam: cam, model: m, f: f, g: g, h: h}
}

func newTestHighlighter(t *testing.T, s *testScene, cfg Config) *Highlighter {
	t.Helper()
	h := NewHighlighter(s.world, cfg)
	if err := h.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return h
}

// Pixel positions in the test viewport.
const (
	centerX, centerY = 50.0, 50.0 // item 1 on f
	item3X, item3Y   = 24.0, 50.0 // item 3 on h
	emptyX, emptyY   = 5.0, 5.0
)

func click(vp *Viewport, x, y float64, mods KeyModifiers) {
	vp.Dispatch(PointerEvent{Type: PointerDown, Button: MouseButtonLeft, X: x, Y: y, Modifiers: mods})
	vp.Dispatch(PointerEvent{Type: PointerUp, Button: MouseButtonLeft, X: x, Y: y, Modifiers: mods})
}

func move(vp *Viewport, x, y float64) {
	vp.Dispatch(PointerEvent{Type: PointerMove, X: x, Y: y})
}

func fragMap(pairs ...any) FragmentIDMap {
	m := make(FragmentIDMap)
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Add(pairs[i].(string), pairs[i+1].(uint32))
	}
	return m
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
