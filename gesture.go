package highlight

import (
	"log/slog"
	"math"
)

// gestureState tracks one press/release cycle of the pointer.
type gestureState struct {
	down           bool
	moved          bool
	button         MouseButton
	startX, startY float64
}

func (h *Highlighter) onPointerDown(ev PointerEvent) {
	if !h.enabled {
		return
	}
	h.pointer.SetPosition(ev.X, ev.Y)
	h.gesture = gestureState{
		down:   true,
		button: ev.Button,
		startX: ev.X,
		startY: ev.Y,
	}
}

func (h *Highlighter) onPointerMove(ev PointerEvent) {
	if !h.enabled {
		return
	}
	gs := &h.gesture
	if !gs.down {
		h.hoverPass()
		return
	}
	if !gs.moved {
		if math.Hypot(ev.X-gs.startX, ev.Y-gs.startY) <= h.cfg.DragThreshold {
			return
		}
		gs.moved = true
	}
	// Dragging orbits the camera; nothing stays hovered.
	if hover := h.store.Group(h.cfg.HoverName); hover != nil && !hover.members.IsEmpty() {
		h.clearGroup(hover)
	}
}

func (h *Highlighter) onPointerUp(ev PointerEvent) {
	if !h.enabled {
		return
	}
	h.pointer.SetPosition(ev.X, ev.Y)
	gs := h.gesture
	h.gesture = gestureState{}
	if !gs.down || gs.moved || gs.button != MouseButtonLeft {
		return
	}
	if !h.cfg.AutoHighlightOnClick {
		return
	}
	replace := true
	if h.cfg.Multiple != MultiSelectNone {
		replace = !h.cfg.Multiple.held(ev.Modifiers)
	}
	if _, err := h.Highlight(h.cfg.SelectName, replace, h.cfg.ZoomToSelection, nil); err != nil {
		h.log.Error("select on click", slog.Any("err", err))
	}
}

// hoverPass re-picks under the pointer for the hover group, skipping items
// already held by any other group.
func (h *Highlighter) hoverPass() {
	exclude := make(FragmentIDMap)
	for _, name := range h.store.Names() {
		if name == h.cfg.HoverName {
			continue
		}
		exclude.Merge(h.store.Group(name).members)
	}
	if _, err := h.Highlight(h.cfg.HoverName, true, false, exclude); err != nil {
		h.log.Error("hover", slog.Any("err", err))
	}
}
