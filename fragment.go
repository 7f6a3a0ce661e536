package highlight

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Instance places one copy of a fragment's geometry for one item.
type Instance struct {
	ItemID    uint32
	Transform mgl64.Mat4
}

// Fragment is an instanced mesh: one geometry drawn once per instance, each
// instance representing a logical item. Items are colored independently.
type Fragment struct {
	ID        string
	Geometry  *Geometry
	Transform mgl64.Mat4
	// BaseColor is the color items carry when no highlight is applied.
	BaseColor Color

	instances []Instance
	colors    map[uint32]Color
	model     *Model
	fills     []*FillMesh
}

// NewFragment creates a fragment with an identity transform and no instances.
func NewFragment(id string, geometry *Geometry) *Fragment {
	return &Fragment{
		ID:        id,
		Geometry:  geometry,
		Transform: mgl64.Ident4(),
		BaseColor: ColorWhite,
		colors:    make(map[uint32]Color),
	}
}

// AddInstance places the geometry for itemID with the given local transform
// and returns the instance index.
func (f *Fragment) AddInstance(itemID uint32, transform mgl64.Mat4) int {
	f.instances = append(f.instances, Instance{ItemID: itemID, Transform: transform})
	if f.model != nil {
		f.model.indexItem(itemID, f.ID)
	}
	return len(f.instances) - 1
}

// Instances returns the instance table. The returned slice MUST NOT be mutated.
func (f *Fragment) Instances() []Instance {
	return f.instances
}

// ItemID returns the item represented by the given instance.
func (f *Fragment) ItemID(instance int) (uint32, bool) {
	if instance < 0 || instance >= len(f.instances) {
		return 0, false
	}
	return f.instances[instance].ItemID, true
}

// ItemIDs returns every item drawn by this fragment.
func (f *Fragment) ItemIDs() ItemSet {
	ids := make(ItemSet, len(f.instances))
	for _, inst := range f.instances {
		ids[inst.ItemID] = struct{}{}
	}
	return ids
}

// Model returns the model that owns this fragment, or nil.
func (f *Fragment) Model() *Model {
	return f.model
}

// Fills returns the cross-section meshes produced from this fragment by
// clipping planes.
func (f *Fragment) Fills() []*FillMesh {
	return f.fills
}

func (f *Fragment) addFill(fill *FillMesh) {
	for _, existing := range f.fills {
		if existing == fill {
			return
		}
	}
	f.fills = append(f.fills, fill)
}

func (f *Fragment) removeFill(fill *FillMesh) {
	for i, existing := range f.fills {
		if existing == fill {
			f.fills = append(f.fills[:i], f.fills[i+1:]...)
			return
		}
	}
}

// SetColor paints the given items with c.
func (f *Fragment) SetColor(c Color, ids ...uint32) {
	for _, id := range ids {
		f.colors[id] = c
	}
}

// SetColorAll paints every item of the fragment with c.
func (f *Fragment) SetColorAll(c Color) {
	for _, inst := range f.instances {
		f.colors[inst.ItemID] = c
	}
}

// ResetColor returns the given items to BaseColor.
func (f *Fragment) ResetColor(ids ...uint32) {
	for _, id := range ids {
		delete(f.colors, id)
	}
}

// ResetAllColors returns every item to BaseColor.
func (f *Fragment) ResetAllColors() {
	clear(f.colors)
}

// Color returns the highlight color applied to itemID. ok is false when the
// item carries BaseColor.
func (f *Fragment) Color(itemID uint32) (c Color, ok bool) {
	c, ok = f.colors[itemID]
	return c, ok
}

// EffectiveColor returns the color itemID is drawn with.
func (f *Fragment) EffectiveColor(itemID uint32) Color {
	if c, ok := f.colors[itemID]; ok {
		return c
	}
	return f.BaseColor
}

// instanceWorld returns the world matrix of instance i.
func (f *Fragment) instanceWorld(i int) mgl64.Mat4 {
	return f.Transform.Mul4(f.instances[i].Transform)
}

// ItemBox returns the world-space bounds of every instance whose item is in
// ids. The box is empty when no instance matches.
func (f *Fragment) ItemBox(ids ItemSet) Box3 {
	box := EmptyBox3()
	if f.Geometry == nil {
		return box
	}
	local := f.Geometry.Bounds()
	for i, inst := range f.instances {
		if !ids.Has(inst.ItemID) {
			continue
		}
		box.Union(local.Transform(f.instanceWorld(i)))
	}
	return box
}

// SurfaceID implements Surface.
func (f *Fragment) SurfaceID() string {
	return f.ID
}

// Raycast implements Surface. Hits carry the instance index.
func (f *Fragment) Raycast(r Ray, hits []Intersection) []Intersection {
	if f.Geometry == nil {
		return hits
	}
	for i := range f.instances {
		start := len(hits)
		hits = f.Geometry.raycast(r, f.instanceWorld(i), hits)
		for j := start; j < len(hits); j++ {
			hits[j].Instance = i
			hits[j].Surface = f
		}
	}
	return hits
}

// ResolveHit implements Surface: the instance gives the item, and the owning
// model gives every fragment that draws that item.
func (f *Fragment) ResolveHit(hit Intersection) (uint32, FragmentIDMap, error) {
	itemID, ok := f.ItemID(hit.Instance)
	if !ok {
		return 0, nil, fmt.Errorf("%w: instance %d of fragment %q", ErrItemNotFound, hit.Instance, f.ID)
	}
	if f.model == nil {
		return 0, nil, fmt.Errorf("%w: %q", ErrNoModel, f.ID)
	}
	return itemID, f.model.FragmentMap(itemID), nil
}
