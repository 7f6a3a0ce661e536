package highlight

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	testRed  = Color{R: 1, A: 1}
	testBlue = Color{B: 1, A: 1}
)

func TestSetup(t *testing.T) {
	s := newTestScene(t)
	h := NewHighlighter(s.world, DefaultConfig())
	setups := 0
	h.OnSetup.Add(func(struct{}) { setups++ })

	if _, err := h.Highlight("select", true, false, nil); !errors.Is(err, ErrNotSetup) {
		t.Errorf("Highlight before Setup: err = %v, want ErrNotSetup", err)
	}
	if err := h.Setup(); err != nil {
		t.Fatal(err)
	}
	if err := h.Setup(); err != nil {
		t.Errorf("second Setup: err = %v, want nil", err)
	}
	if setups != 1 {
		t.Errorf("OnSetup fired %d times, want 1", setups)
	}
	if !h.IsSetup() {
		t.Error("IsSetup = false")
	}
	names := h.Selection().Names()
	if len(names) != 2 || names[0] != "select" || names[1] != "hover" {
		t.Errorf("groups = %v, want [select hover]", names)
	}
}

func TestSetupErrors(t *testing.T) {
	if err := NewHighlighter(nil, DefaultConfig()).Setup(); !errors.Is(err, ErrNoWorld) {
		t.Errorf("err = %v, want ErrNoWorld", err)
	}
	if err := NewHighlighter(NewWorld(), DefaultConfig()).Setup(); !errors.Is(err, ErrNoViewport) {
		t.Errorf("err = %v, want ErrNoViewport", err)
	}
	cfg := DefaultConfig()
	cfg.HoverName = cfg.SelectName
	s := newTestScene(t)
	if err := NewHighlighter(s.world, cfg).Setup(); !errors.Is(err, ErrGroupExists) {
		t.Errorf("err = %v, want ErrGroupExists", err)
	}
}

func TestHighlightResolvesEveryFragmentOfItem(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	move(s.vp, centerX, centerY)

	res, err := h.Highlight("select", true, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil {
		t.Fatal("Result = nil")
	}
	if res.ItemID != 1 {
		t.Errorf("ItemID = %d, want 1", res.ItemID)
	}
	want := fragMap("f", uint32(1), "g", uint32(1))
	if !res.Fragments.Equal(want) {
		t.Errorf("Fragments = %v, want %v", res.Fragments, want)
	}
	if got := h.Selection().Members("select"); !got.Equal(want) {
		t.Errorf("members = %v, want %v", got, want)
	}
	sel := h.cfg.SelectionColor
	for _, frag := range []*Fragment{s.f, s.g} {
		if c, ok := frag.Color(1); !ok || c != sel {
			t.Errorf("%s item 1 color = %v, %v, want %v", frag.ID, c, ok, sel)
		}
	}
	if _, ok := s.f.Color(2); ok {
		t.Error("item 2 was recolored")
	}
}

func TestClearThenMissFiresClearOnly(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	for _, name := range []string{"select", "hover"} {
		t.Run(name, func(t *testing.T) {
			g := h.Group(name)
			highlights, clears := 0, 0
			hh := g.OnHighlight.Add(func(FragmentIDMap) { highlights++ })
			hc := g.OnClear.Add(func(struct{}) { clears++ })
			defer hh.Remove()
			defer hc.Remove()

			if err := h.Clear(name); err != nil {
				t.Fatal(err)
			}
			h.Pointer().SetPosition(emptyX, emptyY)
			res, err := h.Highlight(name, false, false, nil)
			if err != nil || res != nil {
				t.Fatalf("Highlight = %v, %v, want nil, nil", res, err)
			}
			if highlights != 0 {
				t.Errorf("OnHighlight fired %d times, want 0", highlights)
			}
			if clears == 0 {
				t.Error("OnClear did not fire")
			}
			if m := h.Selection().Members(name); !m.IsEmpty() {
				t.Errorf("members = %v, want empty", m)
			}
		})
	}
}

func TestHighlightMissClearsGroup(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	click(s.vp, centerX, centerY, 0)
	if h.Selection().Members("select").IsEmpty() {
		t.Fatal("click did not select")
	}
	click(s.vp, emptyX, emptyY, 0)
	if m := h.Selection().Members("select"); !m.IsEmpty() {
		t.Errorf("members after clicking empty space = %v, want empty", m)
	}
	if _, ok := s.f.Color(1); ok {
		t.Error("item 1 still colored after clear")
	}
}

func TestHighlightEmptyScene(t *testing.T) {
	w := NewWorld()
	w.SetViewport(NewViewport(Rect{Width: 100, Height: 100}))
	w.SetCamera(NewCamera(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, 1))
	h := NewHighlighter(w, DefaultConfig())
	if err := h.Setup(); err != nil {
		t.Fatal(err)
	}
	h.Pointer().SetPosition(centerX, centerY)
	res, err := h.Highlight("select", true, false, nil)
	if err != nil || res != nil {
		t.Errorf("Highlight = %v, %v, want nil, nil", res, err)
	}
	if m := h.Selection().Members("select"); !m.IsEmpty() {
		t.Errorf("members = %v, want empty", m)
	}
}

func TestHighlightExclusion(t *testing.T) {
	tests := []struct {
		name    string
		exclude FragmentIDMap
		want    FragmentIDMap
	}{
		{"one fragment", fragMap("g", uint32(1)), fragMap("f", uint32(1))},
		{"unrelated", fragMap("f", uint32(2)), fragMap("f", uint32(1), "g", uint32(1))},
		{"everything", fragMap("f", uint32(1), "g", uint32(1)), FragmentIDMap{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t)
			h := newTestHighlighter(t, s, DefaultConfig())
			h.Pointer().SetPosition(centerX, centerY)
			if _, err := h.Highlight("select", true, false, tt.exclude); err != nil {
				t.Fatal(err)
			}
			got := h.Selection().Members("select")
			if !got.Equal(tt.want) {
				t.Errorf("members = %v, want %v", got, tt.want)
			}
			for meshID, ids := range tt.exclude {
				for id := range ids {
					if got.Has(meshID, id) {
						t.Errorf("excluded pair (%s, %d) was added", meshID, id)
					}
				}
			}
		})
	}
}

func TestHighlightUnknownGroup(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	if _, err := h.Highlight("nope", true, false, nil); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Highlight: err = %v, want ErrGroupNotFound", err)
	}
	if err := h.HighlightByMap("nope", nil, true, false, nil, nil); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("HighlightByMap: err = %v, want ErrGroupNotFound", err)
	}
	if err := h.Clear("nope"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Clear: err = %v, want ErrGroupNotFound", err)
	}
}

func TestHighlightByMapSkipsUnknownFragments(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	if _, err := h.CreateGroup("custom", testRed); err != nil {
		t.Fatal(err)
	}
	m := fragMap("f", uint32(2), "missing", uint32(7))
	if err := h.HighlightByMap("custom", m, false, false, nil, nil); err != nil {
		t.Fatal(err)
	}
	want := fragMap("f", uint32(2))
	if got := h.Selection().Members("custom"); !got.Equal(want) {
		t.Errorf("members = %v, want %v", got, want)
	}
	if c, _ := s.f.Color(2); c != testRed {
		t.Errorf("color = %v, want %v", c, testRed)
	}
}

func TestHighlightByMapMergesAndReplaces(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	if _, err := h.CreateGroup("custom", testRed); err != nil {
		t.Fatal(err)
	}
	_ = h.HighlightByMap("custom", fragMap("f", uint32(1)), false, false, nil, nil)
	_ = h.HighlightByMap("custom", fragMap("f", uint32(2)), false, false, nil, nil)
	if got := h.Selection().Members("custom").Len(); got != 2 {
		t.Errorf("merged Len = %d, want 2", got)
	}
	_ = h.HighlightByMap("custom", fragMap("h", uint32(3)), true, false, nil, nil)
	want := fragMap("h", uint32(3))
	if got := h.Selection().Members("custom"); !got.Equal(want) {
		t.Errorf("replaced members = %v, want %v", got, want)
	}
	if _, ok := s.f.Color(1); ok {
		t.Error("replaced item kept its color")
	}
}

func TestColorRestoreRoundTrip(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	if _, err := h.CreateGroup("custom", testRed); err != nil {
		t.Fatal(err)
	}
	item1 := fragMap("f", uint32(1), "g", uint32(1))
	if err := h.HighlightByMap("custom", item1, false, false, nil, nil); err != nil {
		t.Fatal(err)
	}

	click(s.vp, centerX, centerY, 0)
	if c, _ := s.f.Color(1); c != h.cfg.SelectionColor {
		t.Fatalf("selected color = %v, want %v", c, h.cfg.SelectionColor)
	}

	if err := h.Clear("select"); err != nil {
		t.Fatal(err)
	}
	for _, frag := range []*Fragment{s.f, s.g} {
		if c := frag.EffectiveColor(1); c != testRed {
			t.Errorf("%s item 1 color after clear = %v, want %v", frag.ID, c, testRed)
		}
	}
	if got := h.Selection().Members("custom"); !got.Equal(item1) {
		t.Errorf("custom members = %v, want %v", got, item1)
	}
	if len(h.ledger) != 0 {
		t.Errorf("ledger not emptied: %v", h.ledger)
	}
}

func TestColorRestoreLedgerUnion(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	if _, err := h.CreateGroup("custom", testRed); err != nil {
		t.Fatal(err)
	}
	all := fragMap("f", uint32(1), "g", uint32(1), "h", uint32(3))
	if err := h.HighlightByMap("custom", all, false, false, nil, nil); err != nil {
		t.Fatal(err)
	}

	click(s.vp, centerX, centerY, ModCtrl)
	click(s.vp, item3X, item3Y, ModCtrl)
	if got := h.Selection().Members("select").Len(); got != 3 {
		t.Fatalf("select Len = %d, want 3", got)
	}

	if err := h.Clear("select"); err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		frag *Fragment
		id   uint32
	}{{s.f, 1}, {s.g, 1}, {s.h, 3}} {
		if got := c.frag.EffectiveColor(c.id); got != testRed {
			t.Errorf("%s item %d = %v, want %v", c.frag.ID, c.id, got, testRed)
		}
	}
}

func TestColorRestoreSkipsItemsLeftGroup(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	if _, err := h.CreateGroup("custom", testRed); err != nil {
		t.Fatal(err)
	}
	_ = h.HighlightByMap("custom", fragMap("f", uint32(1), "g", uint32(1)), false, false, nil, nil)
	click(s.vp, centerX, centerY, 0)
	_ = h.Clear("custom")
	_ = h.Clear("select")

	if _, ok := s.f.Color(1); ok {
		t.Error("item restored into a group that no longer holds it")
	}
	if m := h.Selection().Members("custom"); !m.IsEmpty() {
		t.Errorf("custom members = %v, want empty", m)
	}
}

func TestBackupColor(t *testing.T) {
	s := newTestScene(t)
	cfg := DefaultConfig()
	backup := Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	cfg.BackupColor = &backup
	h := newTestHighlighter(t, s, cfg)
	click(s.vp, centerX, centerY, 0)
	if err := h.Clear("select"); err != nil {
		t.Fatal(err)
	}
	if c, ok := s.f.Color(1); !ok || c != backup {
		t.Errorf("color = %v, %v, want %v", c, ok, backup)
	}
}

func TestFillHitResolvesThroughFaceIndex(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())

	fill := NewFillMesh("fill", NewQuadGeometry(4, 4))
	fill.Transform = mgl64.Translate3D(0, 0, 2)
	fill.MapFaces(0, 1, fragMap("f", uint32(2)))
	plane := NewClippingPlane(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	plane.AddFill(fill, s.f)
	s.world.AddClippingPlane(plane)

	// Face 0: lower-right half of the quad.
	h.Pointer().SetPosition(52.5, 52.5)
	res, err := h.Highlight("select", true, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.ItemID != 2 {
		t.Fatalf("Result = %+v, want item 2", res)
	}
	if got := h.Selection().Members("select"); !got.Equal(fragMap("f", uint32(2))) {
		t.Errorf("members = %v, want f:2", got)
	}
	if c, ok := fill.FaceColor(0); !ok || c != h.cfg.SelectionColor {
		t.Errorf("fill face 0 = %v, %v, want selection color", c, ok)
	}
	if _, ok := fill.FaceColor(1); ok {
		t.Error("unmapped fill face was painted")
	}

	// Face 1 maps to nothing: no result and the selection is kept.
	h.Pointer().SetPosition(47.5, 47.5)
	res, err = h.Highlight("select", false, false, nil)
	if err != nil || res != nil {
		t.Errorf("Highlight on unmapped face = %v, %v, want nil, nil", res, err)
	}
	if h.Selection().Members("select").IsEmpty() {
		t.Error("unmapped face hit cleared the selection")
	}

	if err := h.Clear("select"); err != nil {
		t.Fatal(err)
	}
	if _, ok := fill.FaceColor(0); ok {
		t.Error("fill face still painted after clear")
	}
}

func TestHighlightPaintsFillsOfFragment(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	fill := NewFillMesh("fill", NewQuadGeometry(1, 1))
	fill.MapFaces(0, 2, fragMap("f", uint32(1)))
	plane := NewClippingPlane(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	plane.AddFill(fill, s.f)
	s.world.AddClippingPlane(plane)

	if err := h.HighlightByMap("select", fragMap("f", uint32(1)), true, false, nil, nil); err != nil {
		t.Fatal(err)
	}
	if got := h.Fills().Painted("select"); got != 2 {
		t.Errorf("painted faces = %d, want 2", got)
	}
}

func TestFrameCamera(t *testing.T) {
	s := newTestScene(t)
	cfg := DefaultConfig()
	cfg.ZoomDuration = 0
	h := newTestHighlighter(t, s, cfg)
	h.Pointer().SetPosition(centerX, centerY)
	if _, err := h.Highlight("select", true, true, nil); err != nil {
		t.Fatal(err)
	}
	// Items span x in [-0.5, 3.5]: center (1.5, 0, 0), radius sqrt(18)/2.
	center := mgl64.Vec3{1.5, 0, 0}
	if !s.cam.Target.ApproxEqualThreshold(center, 1e-9) {
		t.Errorf("Target = %v, want %v", s.cam.Target, center)
	}
	wantZ := 2.1213203435596424 * 1.5 * 2
	if !approx(s.cam.Position.Z(), wantZ) {
		t.Errorf("Position z = %v, want %v", s.cam.Position.Z(), wantZ)
	}
}

func TestFrameCameraSkipsDegenerate(t *testing.T) {
	s := newTestScene(t)
	empty := NewFragment("empty", nil)
	empty.AddInstance(9, mgl64.Ident4())
	if err := s.model.AddFragment(empty); err != nil {
		t.Fatal(err)
	}
	h := newTestHighlighter(t, s, DefaultConfig())
	before := s.cam.Position
	if err := h.HighlightByMap("select", fragMap("empty", uint32(9)), true, true, nil, nil); err != nil {
		t.Fatal(err)
	}
	if s.cam.Animating() || s.cam.Position != before {
		t.Errorf("camera moved to %v for degenerate bounds", s.cam.Position)
	}
}

func TestFrameAnimatesWithUpdate(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	_ = h.HighlightByMap("select", fragMap("f", uint32(1)), true, false, nil, nil)
	if err := h.Frame("select"); err != nil {
		t.Fatal(err)
	}
	if !s.cam.Animating() {
		t.Fatal("camera not animating")
	}
	for i := 0; i < 60 && s.cam.Animating(); i++ {
		h.Update(1.0 / 60)
	}
	if s.cam.Animating() {
		t.Error("camera still animating after the zoom duration")
	}
	if s.cam.Target != (mgl64.Vec3{}) {
		t.Errorf("Target = %v, want origin", s.cam.Target)
	}
}

func TestSetEnabled(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	click(s.vp, centerX, centerY, 0)
	h.SetEnabled(false)

	click(s.vp, emptyX, emptyY, 0)
	if h.Selection().Members("select").IsEmpty() {
		t.Error("disabled highlighter reacted to a click")
	}
	res, err := h.Highlight("select", true, false, nil)
	if res != nil || err != nil {
		t.Errorf("Highlight while disabled = %v, %v, want nil, nil", res, err)
	}
	if c, _ := s.f.Color(1); c != h.cfg.SelectionColor {
		t.Error("disabling changed colors")
	}

	h.SetEnabled(true)
	click(s.vp, emptyX, emptyY, 0)
	if !h.Selection().Members("select").IsEmpty() {
		t.Error("re-enabled highlighter ignored a click")
	}
}

func TestDispose(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	disposed := 0
	h.OnDisposed.Add(func(struct{}) { disposed++ })
	click(s.vp, centerX, centerY, 0)

	h.Dispose()
	h.Dispose()
	if disposed != 1 {
		t.Errorf("OnDisposed fired %d times, want 1", disposed)
	}
	if _, ok := s.f.Color(1); ok {
		t.Error("colors not reset on dispose")
	}
	if _, err := h.Highlight("select", true, false, nil); !errors.Is(err, ErrDisposed) {
		t.Errorf("Highlight: err = %v, want ErrDisposed", err)
	}
	if err := h.HighlightByMap("select", nil, true, false, nil, nil); !errors.Is(err, ErrDisposed) {
		t.Errorf("HighlightByMap: err = %v, want ErrDisposed", err)
	}
	if err := h.Clear("select"); !errors.Is(err, ErrDisposed) {
		t.Errorf("Clear: err = %v, want ErrDisposed", err)
	}
	if _, err := h.CreateGroup("x", testBlue); !errors.Is(err, ErrDisposed) {
		t.Errorf("CreateGroup: err = %v, want ErrDisposed", err)
	}
	if err := h.Setup(); !errors.Is(err, ErrDisposed) {
		t.Errorf("Setup: err = %v, want ErrDisposed", err)
	}

	click(s.vp, centerX, centerY, 0)
	if _, ok := s.f.Color(1); ok {
		t.Error("disposed highlighter still handles viewport events")
	}
}

func TestClearAll(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	if _, err := h.CreateGroup("custom", testBlue); err != nil {
		t.Fatal(err)
	}
	_ = h.HighlightByMap("custom", fragMap("h", uint32(3)), false, false, nil, nil)
	click(s.vp, centerX, centerY, 0)
	if err := h.ClearAll(); err != nil {
		t.Fatal(err)
	}
	for _, name := range h.Selection().Names() {
		if m := h.Selection().Members(name); !m.IsEmpty() {
			t.Errorf("%s members = %v, want empty", name, m)
		}
	}
	if _, ok := s.h.Color(3); ok {
		t.Error("custom color survived ClearAll")
	}
}

func TestHighlightResolveErrorKeepsGroup(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	click(s.vp, centerX, centerY, 0)
	before := h.Selection().Members("select")
	if before.IsEmpty() {
		t.Fatal("click did not select")
	}

	// A fragment detached from its model cannot resolve its items.
	s.f.model = nil
	h.Pointer().SetPosition(centerX, centerY)
	if _, err := h.Highlight("select", true, false, nil); !errors.Is(err, ErrNoModel) {
		t.Fatalf("err = %v, want ErrNoModel", err)
	}
	if got := h.Selection().Members("select"); !got.Equal(before) {
		t.Errorf("members = %v, want %v", got, before)
	}
	if c, ok := s.g.Color(1); !ok || c != h.cfg.SelectionColor {
		t.Errorf("g item 1 = %v, %v, want selection color kept", c, ok)
	}
}

func TestClearRepaintsRemainingGroup(t *testing.T) {
	tests := []struct {
		name  string
		clear string
		want  func(h *Highlighter) Color
	}{
		{"custom cleared, select wins", "custom", func(h *Highlighter) Color { return h.cfg.SelectionColor }},
		{"select cleared, custom wins", "select", func(*Highlighter) Color { return testRed }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t)
			h := newTestHighlighter(t, s, DefaultConfig())
			if _, err := h.CreateGroup("custom", testRed); err != nil {
				t.Fatal(err)
			}
			_ = h.HighlightByMap("custom", fragMap("f", uint32(1), "g", uint32(1)), false, false, nil, nil)
			click(s.vp, centerX, centerY, 0)

			if err := h.Clear(tt.clear); err != nil {
				t.Fatal(err)
			}
			want := tt.want(h)
			for _, frag := range []*Fragment{s.f, s.g} {
				if c, ok := frag.Color(1); !ok || c != want {
					t.Errorf("%s item 1 = %v, %v, want %v", frag.ID, c, ok, want)
				}
			}
		})
	}
}

func TestClearRepaintsFillOfRemainingGroup(t *testing.T) {
	s := newTestScene(t)
	h := newTestHighlighter(t, s, DefaultConfig())
	fill := NewFillMesh("fill", NewQuadGeometry(1, 1))
	fill.MapFaces(0, 2, fragMap("f", uint32(1)))
	plane := NewClippingPlane(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1})
	plane.AddFill(fill, s.f)
	s.world.AddClippingPlane(plane)

	if _, err := h.CreateGroup("custom", testRed); err != nil {
		t.Fatal(err)
	}
	_ = h.HighlightByMap("custom", fragMap("f", uint32(1)), false, false, nil, nil)
	_ = h.HighlightByMap("select", fragMap("f", uint32(1)), false, false, nil, nil)
	if c, _ := fill.FaceColor(0); c != h.cfg.SelectionColor {
		t.Fatalf("face 0 = %v, want selection color", c)
	}

	_ = h.Clear("select")
	if c, ok := fill.FaceColor(0); !ok || c != testRed {
		t.Errorf("face 0 = %v, %v, want custom color", c, ok)
	}
	_ = h.Clear("custom")
	if _, ok := fill.FaceColor(0); ok {
		t.Error("face 0 still painted with no group holding the item")
	}
}
