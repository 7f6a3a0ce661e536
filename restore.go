package highlight

import "log/slog"

// restoreLedger remembers, per group and model, the items whose color a
// select highlight is about to overwrite.
type restoreLedger map[string]map[string]ItemSet

// snapshot records every item of every user group that lives on a mesh in
// m. Entries are merged with what is already recorded.
func (l restoreLedger) snapshot(h *Highlighter, m FragmentIDMap) {
	for _, name := range h.store.Names() {
		if name == h.cfg.SelectName || name == h.cfg.HoverName {
			continue
		}
		g := h.store.Group(name)
		for meshID := range m {
			ids := g.members[meshID]
			if len(ids) == 0 {
				continue
			}
			frag := h.world.Fragment(meshID)
			if frag == nil || frag.Model() == nil {
				continue
			}
			l.add(name, frag.Model().ID, ids)
		}
	}
}

func (l restoreLedger) add(group, modelID string, ids ItemSet) {
	byModel, ok := l[group]
	if !ok {
		byModel = make(map[string]ItemSet)
		l[group] = byModel
	}
	set, ok := byModel[modelID]
	if !ok {
		set = make(ItemSet, len(ids))
		byModel[modelID] = set
	}
	for id := range ids {
		set[id] = struct{}{}
	}
}

// restoreColors repaints the recorded items of each group that still holds
// them, then empties the ledger. It runs when the select group is cleared.
func (h *Highlighter) restoreColors() {
	if len(h.ledger) == 0 {
		return
	}
	for _, name := range h.store.Names() {
		byModel, ok := h.ledger[name]
		if !ok {
			continue
		}
		g := h.store.Group(name)
		for modelID, ids := range byModel {
			model := h.world.Model(modelID)
			if model == nil {
				continue
			}
			m := make(FragmentIDMap)
			for meshID, set := range model.FragmentMapOf(ids) {
				for id := range set {
					if g.members.Has(meshID, id) {
						m.Add(meshID, id)
					}
				}
			}
			if m.IsEmpty() {
				continue
			}
			h.trace("restore", slog.String("group", name), slog.String("model", modelID), slog.Int("items", m.Len()))
			h.highlightByMap(g, m, false, false, nil, nil, true)
		}
	}
	clear(h.ledger)
}
