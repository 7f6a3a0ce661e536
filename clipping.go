package highlight

import "github.com/go-gl/mathgl/mgl64"

// ClippingPlane is a section plane owned by the World. Only points on the
// positive side of every enabled plane are visible and pickable. Fills holds
// the cross-sections the plane cut through fragments.
type ClippingPlane struct {
	Plane   Plane
	Enabled bool

	fills []*FillMesh
}

// NewClippingPlane creates an enabled plane through point facing normal.
func NewClippingPlane(point, normal mgl64.Vec3) *ClippingPlane {
	return &ClippingPlane{Plane: NewPlane(point, normal), Enabled: true}
}

// AddFill attaches a cross-section to the plane and links it to the
// fragments it was cut from, so highlighting those fragments also paints it.
func (p *ClippingPlane) AddFill(fill *FillMesh, sources ...*Fragment) {
	p.fills = append(p.fills, fill)
	for _, src := range sources {
		src.addFill(fill)
		fill.sources = append(fill.sources, src)
	}
}

// RemoveFill detaches a cross-section from the plane and its sources.
func (p *ClippingPlane) RemoveFill(fill *FillMesh) {
	for i, f := range p.fills {
		if f == fill {
			p.fills = append(p.fills[:i], p.fills[i+1:]...)
			break
		}
	}
	for _, src := range fill.sources {
		src.removeFill(fill)
	}
	fill.sources = nil
}

// Fills returns the plane's cross-sections. The returned slice MUST NOT be
// mutated.
func (p *ClippingPlane) Fills() []*FillMesh {
	return p.fills
}
