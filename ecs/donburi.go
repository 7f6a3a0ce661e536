package ecs

import (
	"github.com/phanxgames/highlight"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HighlightEventType is the Donburi event type for highlight events.
// Subscribe to this in your ECS systems to react to selection changes.
var HighlightEventType = events.NewEventType[highlight.HighlightEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Highlight and clear events are published to HighlightEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) highlight.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event highlight.HighlightEvent) {
	HighlightEventType.Publish(s.world, event)
}

// SubscribeGroup registers fn for events of one group only. The returned
// subscriber is the one registered, for HighlightEventType.Unsubscribe.
func SubscribeGroup(world donburi.World, group string, fn func(donburi.World, highlight.HighlightEvent)) events.Subscriber[highlight.HighlightEvent] {
	sub := func(w donburi.World, e highlight.HighlightEvent) {
		if e.Group == group {
			fn(w, e)
		}
	}
	HighlightEventType.Subscribe(world, sub)
	return sub
}

// Membership mirrors group membership from processed highlight events, so
// systems can query selections without holding the Highlighter.
type Membership struct {
	groups map[string]highlight.FragmentIDMap
}

// TrackMembership subscribes a new Membership to world's highlight events.
func TrackMembership(world donburi.World) *Membership {
	m := &Membership{groups: make(map[string]highlight.FragmentIDMap)}
	HighlightEventType.Subscribe(world, m.apply)
	return m
}

func (m *Membership) apply(_ donburi.World, e highlight.HighlightEvent) {
	switch e.Type {
	case highlight.EventHighlight:
		cur, ok := m.groups[e.Group]
		if !ok {
			cur = make(highlight.FragmentIDMap)
			m.groups[e.Group] = cur
		}
		cur.Merge(e.Fragments)
	case highlight.EventClear:
		delete(m.groups, e.Group)
	}
}

// Members returns a copy of the mirrored membership of group.
func (m *Membership) Members(group string) highlight.FragmentIDMap {
	cur, ok := m.groups[group]
	if !ok {
		return highlight.FragmentIDMap{}
	}
	return cur.Clone()
}

// Has reports whether group holds (meshID, itemID).
func (m *Membership) Has(group, meshID string, itemID uint32) bool {
	return m.groups[group].Has(meshID, itemID)
}
