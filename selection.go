package highlight

import "fmt"

// Group is a named highlight category with a color and a membership map.
type Group struct {
	Name  string
	Color Color

	members FragmentIDMap

	// OnHighlight fires after members were added, with a copy of the
	// membership.
	OnHighlight Event[FragmentIDMap]
	// OnClear fires after the membership was emptied.
	OnClear Event[struct{}]
}

// Members returns a copy of the group's membership.
func (g *Group) Members() FragmentIDMap {
	return g.members.Clone()
}

// SelectionStore holds every group. It is the only place membership changes.
type SelectionStore struct {
	groups map[string]*Group
	order  []string
}

// NewSelectionStore creates an empty store.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{groups: make(map[string]*Group)}
}

// CreateGroup adds a group with an empty membership.
func (s *SelectionStore) CreateGroup(name string, c Color) (*Group, error) {
	if _, ok := s.groups[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupExists, name)
	}
	g := &Group{Name: name, Color: c, members: make(FragmentIDMap)}
	s.groups[name] = g
	s.order = append(s.order, name)
	return g, nil
}

// Group returns the named group, or nil.
func (s *SelectionStore) Group(name string) *Group {
	return s.groups[name]
}

// Names returns the group names in creation order.
func (s *SelectionStore) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Members returns a copy of the named group's membership, or nil.
func (s *SelectionStore) Members(name string) FragmentIDMap {
	g, ok := s.groups[name]
	if !ok {
		return nil
	}
	return g.Members()
}

// SetMembers replaces the group's membership with m, or unions m into it
// when merge is true.
func (s *SelectionStore) SetMembers(name string, m FragmentIDMap, merge bool) error {
	g, ok := s.groups[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	if !merge {
		g.members = m.Clone()
		return nil
	}
	g.members.Merge(m)
	return nil
}

// Clear empties the group's membership, then fires its OnClear.
func (s *SelectionStore) Clear(name string) error {
	g, ok := s.groups[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	g.members = make(FragmentIDMap)
	g.OnClear.Trigger(struct{}{})
	return nil
}

// ClearAll clears every group in creation order.
func (s *SelectionStore) ClearAll() {
	for _, name := range s.Names() {
		_ = s.Clear(name)
	}
}

// Exclude returns target minus exclude, per mesh. Meshes left empty are
// dropped. target is not modified.
func (s *SelectionStore) Exclude(target, exclude FragmentIDMap) FragmentIDMap {
	return target.Exclude(exclude)
}

// Remove deletes the group and its event handlers.
func (s *SelectionStore) Remove(name string) {
	g, ok := s.groups[name]
	if !ok {
		return
	}
	g.OnHighlight.Reset()
	g.OnClear.Reset()
	delete(s.groups, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Reset removes every group.
func (s *SelectionStore) Reset() {
	for _, name := range s.Names() {
		s.Remove(name)
	}
}
