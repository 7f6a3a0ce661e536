package highlight

import (
	"fmt"
	"log/slog"
)

// Result describes a successful pick.
type Result struct {
	// ItemID is the logical item under the pointer.
	ItemID uint32
	// Fragments holds every (fragment, item) pair that was highlighted.
	Fragments FragmentIDMap
}

// Highlighter turns pointer activity over a World into colored selection
// groups. Two groups are created by Setup: the select group, filled by
// clicks, and the hover group, which follows the pointer. Callers may add
// their own groups with CreateGroup.
//
// A Highlighter is not safe for concurrent use. Drive it from the goroutine
// that delivers viewport events.
type Highlighter struct {
	world *World
	cfg   Config
	log   *slog.Logger

	store     *SelectionStore
	fills     *FillHighlighter
	pointer   *PointerTracker
	raycaster *Raycaster
	ledger    restoreLedger
	gesture   gestureState

	handles     []CallbackHandle
	entityStore EntityStore

	enabled  bool
	setup    bool
	disposed bool
	debug    bool

	// OnSetup fires once Setup has wired the viewport.
	OnSetup Event[struct{}]
	// OnDisposed fires once from Dispose.
	OnDisposed Event[struct{}]
}

// NewHighlighter creates a Highlighter for w. Call Setup before use.
func NewHighlighter(w *World, cfg Config) *Highlighter {
	if cfg.ZoomFactor <= 0 {
		cfg.ZoomFactor = 1.5
	}
	return &Highlighter{
		world:   w,
		cfg:     cfg,
		log:     cfg.logger().WithGroup("highlight"),
		store:   NewSelectionStore(),
		fills:   NewFillHighlighter(),
		ledger:  make(restoreLedger),
		enabled: true,
	}
}

// Config returns the configuration the Highlighter was created with.
func (h *Highlighter) Config() Config {
	return h.cfg
}

// Selection returns the underlying group store.
func (h *Highlighter) Selection() *SelectionStore {
	return h.store
}

// Fills returns the fill highlighter.
func (h *Highlighter) Fills() *FillHighlighter {
	return h.fills
}

// Setup creates the select and hover groups and subscribes to the world's
// viewport. Calling Setup again is a no-op.
func (h *Highlighter) Setup() error {
	if h.disposed {
		return ErrDisposed
	}
	if h.setup {
		return nil
	}
	if h.world == nil {
		return ErrNoWorld
	}
	vp := h.world.Viewport()
	if vp == nil {
		return ErrNoViewport
	}

	sel, err := h.store.CreateGroup(h.cfg.SelectName, h.cfg.SelectionColor)
	if err != nil {
		return fmt.Errorf("highlight: setup: %w", err)
	}
	if _, err := h.store.CreateGroup(h.cfg.HoverName, h.cfg.HoverColor); err != nil {
		h.store.Remove(h.cfg.SelectName)
		return fmt.Errorf("highlight: setup: %w", err)
	}

	h.pointer = NewPointerTracker(vp)
	h.raycaster = NewRaycaster(h.world, h.pointer)
	h.handles = append(h.handles,
		vp.OnPointerDown(h.onPointerDown),
		vp.OnPointerUp(h.onPointerUp),
		vp.OnPointerMove(h.onPointerMove),
		sel.OnHighlight.Add(func(FragmentIDMap) { h.clearHover() }),
		sel.OnClear.Add(func(struct{}) { h.restoreColors() }),
	)
	h.setup = true
	h.trace("setup", slog.String("select", h.cfg.SelectName), slog.String("hover", h.cfg.HoverName))
	h.OnSetup.Trigger(struct{}{})
	return nil
}

// IsSetup reports whether Setup has completed.
func (h *Highlighter) IsSetup() bool {
	return h.setup
}

// SetEnabled suspends or resumes picking. While disabled, pointer events
// are ignored and Highlight and HighlightByMap do nothing. Existing
// highlights are left in place.
func (h *Highlighter) SetEnabled(enabled bool) {
	h.enabled = enabled
	if !enabled {
		h.gesture = gestureState{}
	}
}

// Enabled reports whether picking is active.
func (h *Highlighter) Enabled() bool {
	return h.enabled
}

// Pointer returns the pointer tracker created by Setup, or nil.
func (h *Highlighter) Pointer() *PointerTracker {
	return h.pointer
}

// Raycaster returns the raycaster created by Setup, or nil.
func (h *Highlighter) Raycaster() *Raycaster {
	return h.raycaster
}

// CreateGroup adds a named group painted with c.
func (h *Highlighter) CreateGroup(name string, c Color) (*Group, error) {
	if h.disposed {
		return nil, ErrDisposed
	}
	return h.store.CreateGroup(name, c)
}

// Group returns the named group, or nil.
func (h *Highlighter) Group(name string) *Group {
	return h.store.Group(name)
}

// Highlight picks under the current pointer position and adds the item to
// the named group. replacePrevious clears the group once the hit resolved.
// frameCamera flies the camera to the new items. Items in exclude are never
// added.
//
// A pick that hits nothing clears the group and returns nil, nil. A hit on a
// fill face that maps to no item, or a hit that fails to resolve, leaves the
// group as is.
func (h *Highlighter) Highlight(name string, replacePrevious, frameCamera bool, exclude FragmentIDMap) (*Result, error) {
	if h.disposed {
		return nil, ErrDisposed
	}
	if !h.enabled {
		return nil, nil
	}
	if !h.setup {
		return nil, ErrNotSetup
	}
	g, err := h.group(name)
	if err != nil {
		return nil, err
	}
	hit, err := h.raycaster.CastRay()
	if err != nil {
		return nil, err
	}
	if hit == nil {
		h.clearGroup(g)
		return nil, nil
	}

	itemID, items, err := hit.Surface.ResolveHit(*hit)
	if err != nil {
		return nil, fmt.Errorf("highlight: resolve hit on %q: %w", hit.Surface.SurfaceID(), err)
	}
	if items == nil {
		h.trace("fill face without items", slog.String("fill", hit.Surface.SurfaceID()), slog.Int("face", hit.Face))
		return nil, nil
	}
	fill, _ := hit.Surface.(*FillMesh)

	applied := h.highlightByMap(g, items, replacePrevious, frameCamera, exclude, fill, false)
	return &Result{ItemID: itemID, Fragments: applied}, nil
}

// HighlightByMap adds the pairs of m to the named group without picking.
// fill, when not nil, is a fill mesh whose matching faces are painted too.
// Fragment IDs that are not in the world are skipped.
func (h *Highlighter) HighlightByMap(name string, m FragmentIDMap, replacePrevious, frameCamera bool, exclude FragmentIDMap, fill *FillMesh) error {
	if h.disposed {
		return ErrDisposed
	}
	if !h.enabled {
		return nil
	}
	if h.world == nil {
		return ErrNoWorld
	}
	g, err := h.group(name)
	if err != nil {
		return err
	}
	h.highlightByMap(g, m, replacePrevious, frameCamera, exclude, fill, false)
	return nil
}

// highlightByMap applies m to g and returns the pairs actually added.
// restoring is set while replaying the restore ledger, which must not
// snapshot itself.
func (h *Highlighter) highlightByMap(g *Group, m FragmentIDMap, replacePrevious, frameCamera bool, exclude FragmentIDMap, fill *FillMesh, restoring bool) FragmentIDMap {
	if replacePrevious {
		h.clearGroup(g)
	}
	filtered := m.Exclude(exclude)
	if g.Name == h.cfg.SelectName && !restoring {
		h.ledger.snapshot(h, filtered)
	}

	added := make(FragmentIDMap, len(filtered))
	for _, meshID := range filtered.MeshIDs() {
		frag := h.world.Fragment(meshID)
		if frag == nil {
			h.log.Warn("skipping unknown fragment", slog.String("group", g.Name), slog.String("fragment", meshID))
			continue
		}
		ids := filtered[meshID]
		added.AddSet(meshID, ids)
		frag.SetColor(g.Color, ids.Sorted()...)
		for _, fl := range frag.Fills() {
			h.fills.Highlight(g.Name, fl, g.Color, filtered)
		}
	}
	if added.IsEmpty() {
		return added
	}

	if err := h.store.SetMembers(g.Name, added, true); err != nil {
		h.log.Error("set members", slog.String("group", g.Name), slog.Any("err", err))
		return nil
	}
	h.trace("highlight", slog.String("group", g.Name), slog.Int("items", added.Len()))
	g.OnHighlight.Trigger(g.Members())
	h.emit(EventHighlight, g.Name, added.Clone())

	if fill != nil {
		h.fills.Highlight(g.Name, fill, g.Color, added)
	}
	if frameCamera {
		h.zoomTo(added)
	}
	if h.debug {
		h.debugCheckMembers(g)
	}
	return added
}

func (h *Highlighter) group(name string) (*Group, error) {
	g := h.store.Group(name)
	if g == nil {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	return g, nil
}

// Clear removes every item from the named group and restores their colors.
// Clearing the select group also replays the restore ledger.
func (h *Highlighter) Clear(name string) error {
	if h.disposed {
		return ErrDisposed
	}
	if h.world == nil {
		return ErrNoWorld
	}
	g, err := h.group(name)
	if err != nil {
		return err
	}
	h.clearGroup(g)
	return nil
}

// ClearAll clears every group in creation order.
func (h *Highlighter) ClearAll() error {
	if h.disposed {
		return ErrDisposed
	}
	if h.world == nil {
		return ErrNoWorld
	}
	for _, name := range h.store.Names() {
		if g := h.store.Group(name); g != nil {
			h.clearGroup(g)
		}
	}
	return nil
}

// clearGroup resets fills, then member colors, then empties the group.
// Members still held by another group take that group's color instead of
// being reset. OnClear fires last, once the group is empty.
func (h *Highlighter) clearGroup(g *Group) {
	h.fills.Clear(g.Name)
	order := h.precedence(g)
	kept := make(map[*Group]FragmentIDMap, len(order))
	for meshID, ids := range g.members {
		frag := h.world.Fragment(meshID)
		if frag == nil {
			continue
		}
		for _, id := range ids.Sorted() {
			if other := holder(order, meshID, id); other != nil {
				if kept[other] == nil {
					kept[other] = make(FragmentIDMap)
				}
				kept[other].Add(meshID, id)
				continue
			}
			if h.cfg.BackupColor != nil {
				frag.SetColor(*h.cfg.BackupColor, id)
			} else {
				frag.ResetColor(id)
			}
		}
	}
	// Lowest precedence first so shared fill faces end with the winner.
	for i := len(order) - 1; i >= 0; i-- {
		if m := kept[order[i]]; m != nil {
			h.repaint(order[i], m)
		}
	}
	h.trace("clear", slog.String("group", g.Name), slog.Int("items", g.members.Len()))
	if err := h.store.Clear(g.Name); err != nil {
		h.log.Error("clear group", slog.String("group", g.Name), slog.Any("err", err))
		return
	}
	h.emit(EventClear, g.Name, nil)
}

// precedence lists every group except skip in the order their colors win:
// select, then user groups from newest to oldest, then hover.
func (h *Highlighter) precedence(skip *Group) []*Group {
	names := h.store.Names()
	out := make([]*Group, 0, len(names))
	add := func(name string) {
		if g := h.store.Group(name); g != nil && g != skip {
			out = append(out, g)
		}
	}
	add(h.cfg.SelectName)
	for i := len(names) - 1; i >= 0; i-- {
		if names[i] != h.cfg.SelectName && names[i] != h.cfg.HoverName {
			add(names[i])
		}
	}
	add(h.cfg.HoverName)
	return out
}

// holder returns the first group in order that holds (meshID, id), or nil.
func holder(order []*Group, meshID string, id uint32) *Group {
	for _, g := range order {
		if g.members.Has(meshID, id) {
			return g
		}
	}
	return nil
}

// repaint paints m, and the fill faces cut from it, in g's color without
// changing membership.
func (h *Highlighter) repaint(g *Group, m FragmentIDMap) {
	for _, meshID := range m.MeshIDs() {
		frag := h.world.Fragment(meshID)
		if frag == nil {
			continue
		}
		frag.SetColor(g.Color, m[meshID].Sorted()...)
		for _, fl := range frag.Fills() {
			h.fills.Highlight(g.Name, fl, g.Color, m)
		}
	}
}

// clearHover empties the hover group. Items the select group now holds keep
// the selection color.
func (h *Highlighter) clearHover() {
	hover := h.store.Group(h.cfg.HoverName)
	if hover == nil || hover.members.IsEmpty() {
		return
	}
	h.clearGroup(hover)
}

// Update delivers injected viewport input and advances the camera flight.
// Call it once per frame.
func (h *Highlighter) Update(dt float32) {
	if h.disposed || h.world == nil {
		return
	}
	if vp := h.world.Viewport(); vp != nil {
		vp.Update()
	}
	if cam := h.world.Camera(); cam != nil {
		cam.Update(dt)
	}
}

// Dispose unsubscribes from the viewport, clears every group and releases
// all handlers. Every later call returns ErrDisposed.
func (h *Highlighter) Dispose() {
	if h.disposed {
		return
	}
	for _, handle := range h.handles {
		handle.Remove()
	}
	h.handles = nil
	if h.pointer != nil {
		h.pointer.Dispose()
	}
	if h.world != nil {
		for _, name := range h.store.Names() {
			h.clearGroup(h.store.Group(name))
		}
	}
	clear(h.ledger)
	h.fills.Dispose()
	h.store.Reset()
	h.gesture = gestureState{}
	h.entityStore = nil
	h.setup = false
	h.disposed = true

	h.OnDisposed.Trigger(struct{}{})
	h.OnDisposed.Reset()
	h.OnSetup.Reset()
}

// IsDisposed reports whether Dispose has been called.
func (h *Highlighter) IsDisposed() bool {
	return h.disposed
}
