package highlight

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// FillMesh is the cross-section a clipping plane cuts through one or more
// fragments. It is its own geometry, so each face carries the items it
// represents and its own color.
type FillMesh struct {
	ID        string
	Geometry  *Geometry
	Transform mgl64.Mat4

	faceItems  map[int]FragmentIDMap
	faceColors map[int]Color
	sources    []*Fragment
}

// NewFillMesh creates a fill with an identity transform and no face index.
func NewFillMesh(id string, geometry *Geometry) *FillMesh {
	return &FillMesh{
		ID:         id,
		Geometry:   geometry,
		Transform:  mgl64.Ident4(),
		faceItems:  make(map[int]FragmentIDMap),
		faceColors: make(map[int]Color),
	}
}

// MapFaces records that faces [first, first+count) represent items.
func (f *FillMesh) MapFaces(first, count int, items FragmentIDMap) {
	for face := first; face < first+count; face++ {
		f.faceItems[face] = items.Clone()
	}
}

// FaceItems returns the items a face represents, or nil.
func (f *FillMesh) FaceItems(face int) FragmentIDMap {
	return f.faceItems[face]
}

// Sources returns the fragments this fill was cut from.
func (f *FillMesh) Sources() []*Fragment {
	return f.sources
}

// SetFaceColor paints one face.
func (f *FillMesh) SetFaceColor(face int, c Color) {
	f.faceColors[face] = c
}

// ResetFaceColor returns one face to its default color.
func (f *FillMesh) ResetFaceColor(face int) {
	delete(f.faceColors, face)
}

// FaceColor returns the highlight color of a face. ok is false when the face
// carries its default color.
func (f *FillMesh) FaceColor(face int) (c Color, ok bool) {
	c, ok = f.faceColors[face]
	return c, ok
}

// facesFor returns, in ascending order, every face whose items intersect m.
func (f *FillMesh) facesFor(m FragmentIDMap) []int {
	var faces []int
	for face, items := range f.faceItems {
		if items.Intersects(m) {
			faces = append(faces, face)
		}
	}
	sort.Ints(faces)
	return faces
}

// SurfaceID implements Surface.
func (f *FillMesh) SurfaceID() string {
	return f.ID
}

// Raycast implements Surface.
func (f *FillMesh) Raycast(r Ray, hits []Intersection) []Intersection {
	if f.Geometry == nil {
		return hits
	}
	start := len(hits)
	hits = f.Geometry.raycast(r, f.Transform, hits)
	for i := start; i < len(hits); i++ {
		hits[i].Surface = f
	}
	return hits
}

// ResolveHit implements Surface through the per-face index. A face with no
// entry resolves to nothing. The reported item is the lowest item ID of the
// first mesh in sorted order.
func (f *FillMesh) ResolveHit(hit Intersection) (uint32, FragmentIDMap, error) {
	items := f.faceItems[hit.Face]
	if items.IsEmpty() {
		return 0, nil, nil
	}
	meshIDs := items.MeshIDs()
	itemID := items[meshIDs[0]].Sorted()[0]
	return itemID, items.Clone(), nil
}

// FillHighlighter mirrors group highlights onto fill meshes and remembers
// which faces it painted so that clearing a group restores exactly those.
// A face painted by a later group belongs to that group until it is cleared.
type FillHighlighter struct {
	painted map[string]map[*FillMesh]map[int]struct{}
	owner   map[*FillMesh]map[int]string
}

// NewFillHighlighter creates an empty FillHighlighter.
func NewFillHighlighter() *FillHighlighter {
	return &FillHighlighter{
		painted: make(map[string]map[*FillMesh]map[int]struct{}),
		owner:   make(map[*FillMesh]map[int]string),
	}
}

// Highlight paints every face of fill that represents an item in m.
func (h *FillHighlighter) Highlight(group string, fill *FillMesh, c Color, m FragmentIDMap) {
	faces := fill.facesFor(m)
	if len(faces) == 0 {
		return
	}
	byFill, ok := h.painted[group]
	if !ok {
		byFill = make(map[*FillMesh]map[int]struct{})
		h.painted[group] = byFill
	}
	set, ok := byFill[fill]
	if !ok {
		set = make(map[int]struct{}, len(faces))
		byFill[fill] = set
	}
	owners, ok := h.owner[fill]
	if !ok {
		owners = make(map[int]string, len(faces))
		h.owner[fill] = owners
	}
	for _, face := range faces {
		fill.SetFaceColor(face, c)
		set[face] = struct{}{}
		owners[face] = group
	}
}

// Clear resets every face painted for group that no other group has painted
// since.
func (h *FillHighlighter) Clear(group string) {
	for fill, faces := range h.painted[group] {
		owners := h.owner[fill]
		for face := range faces {
			if owners[face] != group {
				continue
			}
			fill.ResetFaceColor(face)
			delete(owners, face)
		}
		if len(owners) == 0 {
			delete(h.owner, fill)
		}
	}
	delete(h.painted, group)
}

// Painted returns the number of faces currently painted for group.
func (h *FillHighlighter) Painted(group string) int {
	n := 0
	for _, faces := range h.painted[group] {
		n += len(faces)
	}
	return n
}

// Dispose forgets every painted face without touching fill colors.
func (h *FillHighlighter) Dispose() {
	clear(h.painted)
	clear(h.owner)
}
