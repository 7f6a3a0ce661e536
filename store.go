package highlight

// HighlightEvent is forwarded to an EntityStore whenever a group is
// highlighted or cleared.
type HighlightEvent struct {
	Type  EventType
	Group string
	// Fragments holds the pairs added by a highlight. It is empty for a clear.
	Fragments FragmentIDMap
}

// EntityStore receives group events, typically to bridge them into an ECS.
// See the ecs subpackage for a Donburi adapter.
type EntityStore interface {
	EmitEvent(event HighlightEvent)
}

// SetEntityStore sets the store that receives highlight and clear events.
// Pass nil to stop forwarding.
func (h *Highlighter) SetEntityStore(store EntityStore) {
	h.entityStore = store
}

func (h *Highlighter) emit(typ EventType, group string, m FragmentIDMap) {
	if h.entityStore == nil {
		return
	}
	if m == nil {
		m = FragmentIDMap{}
	}
	h.entityStore.EmitEvent(HighlightEvent{Type: typ, Group: group, Fragments: m})
}
