package highlight

import (
	"slices"
	"sort"
)

// ItemSet is a set of item IDs inside one mesh.
type ItemSet map[uint32]struct{}

// NewItemSet returns a set holding ids.
func NewItemSet(ids ...uint32) ItemSet {
	s := make(ItemSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s ItemSet) Has(id uint32) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the IDs in ascending order.
func (s ItemSet) Sorted() []uint32 {
	ids := make([]uint32, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// FragmentIDMap maps a mesh (fragment) ID to the set of item IDs it holds.
// It is the unit passed between every selection operation.
type FragmentIDMap map[string]ItemSet

// Add inserts ids under meshID, creating the entry when needed.
func (m FragmentIDMap) Add(meshID string, ids ...uint32) {
	set, ok := m[meshID]
	if !ok {
		set = make(ItemSet, len(ids))
		m[meshID] = set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

// AddSet inserts every ID of set under meshID.
func (m FragmentIDMap) AddSet(meshID string, set ItemSet) {
	if len(set) == 0 {
		return
	}
	dst, ok := m[meshID]
	if !ok {
		dst = make(ItemSet, len(set))
		m[meshID] = dst
	}
	for id := range set {
		dst[id] = struct{}{}
	}
}

// Has reports whether (meshID, id) is present.
func (m FragmentIDMap) Has(meshID string, id uint32) bool {
	return m[meshID].Has(id)
}

// Len returns the number of (mesh, item) pairs.
func (m FragmentIDMap) Len() int {
	n := 0
	for _, set := range m {
		n += len(set)
	}
	return n
}

// IsEmpty reports whether the map holds no pairs.
func (m FragmentIDMap) IsEmpty() bool {
	return m.Len() == 0
}

// Clone returns a deep copy. Empty mesh entries are dropped.
func (m FragmentIDMap) Clone() FragmentIDMap {
	out := make(FragmentIDMap, len(m))
	for meshID, set := range m {
		out.AddSet(meshID, set)
	}
	return out
}

// Merge unions other into m in place.
func (m FragmentIDMap) Merge(other FragmentIDMap) {
	for meshID, set := range other {
		m.AddSet(meshID, set)
	}
}

// Exclude returns a new map holding the pairs of m that are not in exclude.
// Mesh entries left empty are dropped entirely.
func (m FragmentIDMap) Exclude(exclude FragmentIDMap) FragmentIDMap {
	out := make(FragmentIDMap, len(m))
	for meshID, set := range m {
		skip := exclude[meshID]
		for id := range set {
			if skip.Has(id) {
				continue
			}
			out.Add(meshID, id)
		}
	}
	return out
}

// Intersects reports whether m and other share at least one pair.
func (m FragmentIDMap) Intersects(other FragmentIDMap) bool {
	for meshID, set := range m {
		o := other[meshID]
		if len(o) == 0 {
			continue
		}
		for id := range set {
			if o.Has(id) {
				return true
			}
		}
	}
	return false
}

// Equal reports whether m and other hold the same pairs. Empty mesh entries
// are ignored.
func (m FragmentIDMap) Equal(other FragmentIDMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for meshID, set := range m {
		o := other[meshID]
		for id := range set {
			if !o.Has(id) {
				return false
			}
		}
	}
	return true
}

// MeshIDs returns the IDs of meshes with at least one item, sorted.
func (m FragmentIDMap) MeshIDs() []string {
	ids := make([]string, 0, len(m))
	for meshID, set := range m {
		if len(set) > 0 {
			ids = append(ids, meshID)
		}
	}
	sort.Strings(ids)
	return ids
}
