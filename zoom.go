package highlight

import "log/slog"

// SelectionBox returns the world-space bounds of every instance in m.
func (h *Highlighter) SelectionBox(m FragmentIDMap) Box3 {
	box := EmptyBox3()
	for meshID, ids := range m {
		frag := h.world.Fragment(meshID)
		if frag == nil {
			continue
		}
		box.Union(frag.ItemBox(ids))
	}
	return box
}

// Frame flies the camera to the named group's members.
func (h *Highlighter) Frame(name string) error {
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
	if h.world.Camera() == nil {
		return ErrNoCamera
	}
	h.zoomTo(g.members)
	return nil
}

// zoomTo fits the camera to the bounding sphere of m scaled by ZoomFactor.
// Empty or degenerate bounds leave the camera alone.
func (h *Highlighter) zoomTo(m FragmentIDMap) {
	cam := h.world.Camera()
	if cam == nil {
		h.log.Warn("cannot frame selection without a camera")
		return
	}
	s := h.SelectionBox(m).BoundingSphere()
	if s.Degenerate() {
		h.trace("skip framing degenerate bounds", slog.Float64("radius", s.Radius))
		return
	}
	s.Radius *= h.cfg.ZoomFactor
	cam.FitToSphere(s, h.cfg.ZoomDuration, h.cfg.ZoomEase)
}
