package highlight

import "log/slog"

// SetDebugMode enables trace logging of every highlight, clear and restore,
// plus consistency checks after each highlight.
func (h *Highlighter) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// trace logs msg at info level when debug mode is on.
func (h *Highlighter) trace(msg string, args ...any) {
	if !h.debug {
		return
	}
	h.log.Info(msg, args...)
}

// debugCheckMembers warns when a group holds fragments that are no longer in
// the world or items a fragment does not draw.
func (h *Highlighter) debugCheckMembers(g *Group) {
	for meshID, ids := range g.members {
		frag := h.world.Fragment(meshID)
		if frag == nil {
			h.log.Warn("group holds missing fragment", slog.String("group", g.Name), slog.String("fragment", meshID))
			continue
		}
		drawn := frag.ItemIDs()
		for id := range ids {
			if !drawn.Has(id) {
				h.log.Warn("group holds item not drawn by fragment",
					slog.String("group", g.Name), slog.String("fragment", meshID), slog.Any("item", id))
			}
		}
	}
}
