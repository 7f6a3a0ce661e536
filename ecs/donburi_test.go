package ecs

import (
	"testing"

	"github.com/phanxgames/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	require.NotNil(t, store)
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []highlight.HighlightEvent
	HighlightEventType.Subscribe(world, func(w donburi.World, e highlight.HighlightEvent) {
		received = append(received, e)
	})

	m := highlight.FragmentIDMap{}
	m.Add("walls", 7, 9)
	store.EmitEvent(highlight.HighlightEvent{
		Type:      highlight.EventHighlight,
		Group:     "select",
		Fragments: m,
	})
	store.EmitEvent(highlight.HighlightEvent{
		Type:  highlight.EventClear,
		Group: "select",
	})

	// Events are queued until processed.
	assert.Empty(t, received)
	HighlightEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, highlight.EventHighlight, received[0].Type)
	assert.Equal(t, "select", received[0].Group)
	assert.True(t, received[0].Fragments.Equal(m))
	assert.Equal(t, highlight.EventClear, received[1].Type)
	assert.True(t, received[1].Fragments.IsEmpty())
}

func TestDonburiStore_FromHighlighter(t *testing.T) {
	w := highlight.NewWorld()
	w.SetCamera(highlight.NewCamera(mglVec(0, 0, 10), mglVec(0, 0, 0), 1))
	w.SetViewport(highlight.NewViewport(highlight.Rect{Width: 100, Height: 100}))

	frag := highlight.NewFragment("f", highlight.NewBoxGeometry(1, 1, 1))
	frag.AddInstance(3, identity())
	model := highlight.NewModel("m")
	require.NoError(t, model.AddFragment(frag))
	require.NoError(t, w.AddModel(model))

	h := highlight.NewHighlighter(w, highlight.DefaultConfig())
	require.NoError(t, h.Setup())

	world := donburi.NewWorld()
	h.SetEntityStore(NewDonburiStore(world))

	var types []highlight.EventType
	HighlightEventType.Subscribe(world, func(w donburi.World, e highlight.HighlightEvent) {
		types = append(types, e.Type)
	})

	m := highlight.FragmentIDMap{}
	m.Add("f", 3)
	require.NoError(t, h.HighlightByMap("select", m, true, false, nil, nil))
	require.NoError(t, h.Clear("select"))
	HighlightEventType.ProcessEvents(world)

	// replacePrevious clears first, so: clear, highlight, clear.
	assert.Equal(t, []highlight.EventType{
		highlight.EventClear, highlight.EventHighlight, highlight.EventClear,
	}, types)
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store highlight.EntityStore = NewDonburiStore(world)
	_ = store
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	count1, count2 := 0, 0
	HighlightEventType.Subscribe(world, func(w donburi.World, e highlight.HighlightEvent) {
		count1++
	})
	HighlightEventType.Subscribe(world, func(w donburi.World, e highlight.HighlightEvent) {
		count2++
	})

	store.EmitEvent(highlight.HighlightEvent{Type: highlight.EventHighlight, Group: "hover"})
	HighlightEventType.ProcessEvents(world)

	assert.Equal(t, 1, count1)
	assert.Equal(t, 1, count2)
}

func TestSubscribeGroup_FiltersOtherGroups(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var got []string
	sub := SubscribeGroup(world, "select", func(w donburi.World, e highlight.HighlightEvent) {
		got = append(got, e.Group)
	})
	store.EmitEvent(highlight.HighlightEvent{Type: highlight.EventHighlight, Group: "hover"})
	store.EmitEvent(highlight.HighlightEvent{Type: highlight.EventHighlight, Group: "select"})
	HighlightEventType.ProcessEvents(world)
	assert.Equal(t, []string{"select"}, got)

	HighlightEventType.Unsubscribe(world, sub)
	store.EmitEvent(highlight.HighlightEvent{Type: highlight.EventClear, Group: "select"})
	HighlightEventType.ProcessEvents(world)
	assert.Len(t, got, 1)
}

func TestMembership_MirrorsHighlighter(t *testing.T) {
	w := highlight.NewWorld()
	frag := highlight.NewFragment("f", highlight.NewBoxGeometry(1, 1, 1))
	frag.AddInstance(1, identity())
	frag.AddInstance(2, identity())
	model := highlight.NewModel("m")
	require.NoError(t, model.AddFragment(frag))
	require.NoError(t, w.AddModel(model))

	h := highlight.NewHighlighter(w, highlight.DefaultConfig())
	_, err := h.CreateGroup("issues", highlight.Color{R: 1, A: 1})
	require.NoError(t, err)

	world := donburi.NewWorld()
	h.SetEntityStore(NewDonburiStore(world))
	members := TrackMembership(world)

	one := highlight.FragmentIDMap{}
	one.Add("f", 1)
	two := highlight.FragmentIDMap{}
	two.Add("f", 2)
	require.NoError(t, h.HighlightByMap("issues", one, false, false, nil, nil))
	require.NoError(t, h.HighlightByMap("issues", two, false, false, nil, nil))
	HighlightEventType.ProcessEvents(world)

	assert.True(t, members.Has("issues", "f", 1))
	assert.True(t, members.Has("issues", "f", 2))
	assert.True(t, members.Members("issues").Equal(h.Selection().Members("issues")))

	require.NoError(t, h.HighlightByMap("issues", one, true, false, nil, nil))
	HighlightEventType.ProcessEvents(world)
	assert.True(t, members.Members("issues").Equal(one), "replace clears before adding")

	require.NoError(t, h.Clear("issues"))
	HighlightEventType.ProcessEvents(world)
	assert.True(t, members.Members("issues").IsEmpty())
	assert.False(t, members.Has("select", "f", 1))
}
