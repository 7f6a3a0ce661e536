package highlight

import "fmt"

// Model groups the fragments loaded from one source file. A logical item may
// be drawn by several fragments of the same model; the model keeps the index
// from item to fragments.
type Model struct {
	ID string

	fragments map[string]*Fragment
	order     []string
	items     map[uint32]map[string]struct{}
}

// NewModel creates an empty model.
func NewModel(id string) *Model {
	return &Model{
		ID:        id,
		fragments: make(map[string]*Fragment),
		items:     make(map[uint32]map[string]struct{}),
	}
}

// AddFragment attaches f to the model and indexes its items. A fragment can
// belong to one model only.
func (m *Model) AddFragment(f *Fragment) error {
	if f == nil {
		panic("highlight: cannot add nil fragment")
	}
	if f.model != nil {
		return fmt.Errorf("highlight: fragment %q already belongs to model %q", f.ID, f.model.ID)
	}
	if _, ok := m.fragments[f.ID]; ok {
		return fmt.Errorf("highlight: model %q already has fragment %q", m.ID, f.ID)
	}
	f.model = m
	m.fragments[f.ID] = f
	m.order = append(m.order, f.ID)
	for _, inst := range f.instances {
		m.indexItem(inst.ItemID, f.ID)
	}
	return nil
}

// RemoveFragment detaches the fragment with the given ID.
func (m *Model) RemoveFragment(id string) {
	f, ok := m.fragments[id]
	if !ok {
		return
	}
	delete(m.fragments, id)
	for i, fid := range m.order {
		if fid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	for itemID, frags := range m.items {
		delete(frags, id)
		if len(frags) == 0 {
			delete(m.items, itemID)
		}
	}
	f.model = nil
}

func (m *Model) indexItem(itemID uint32, fragmentID string) {
	frags, ok := m.items[itemID]
	if !ok {
		frags = make(map[string]struct{})
		m.items[itemID] = frags
	}
	frags[fragmentID] = struct{}{}
}

// Fragment returns the fragment with the given ID, or nil.
func (m *Model) Fragment(id string) *Fragment {
	return m.fragments[id]
}

// Fragments returns the fragments in insertion order.
func (m *Model) Fragments() []*Fragment {
	out := make([]*Fragment, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.fragments[id])
	}
	return out
}

// HasItem reports whether any fragment of the model draws itemID.
func (m *Model) HasItem(itemID uint32) bool {
	return len(m.items[itemID]) > 0
}

// FragmentMap returns every (fragment, item) pair drawing the given items.
// Unknown items are skipped.
func (m *Model) FragmentMap(itemIDs ...uint32) FragmentIDMap {
	out := make(FragmentIDMap)
	for _, itemID := range itemIDs {
		for fragID := range m.items[itemID] {
			out.Add(fragID, itemID)
		}
	}
	return out
}

// FragmentMapOf is FragmentMap for a set of items.
func (m *Model) FragmentMapOf(ids ItemSet) FragmentIDMap {
	return m.FragmentMap(ids.Sorted()...)
}
