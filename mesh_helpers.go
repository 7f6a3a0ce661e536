package highlight

import "github.com/go-gl/mathgl/mgl64"

// NewBoxGeometry returns an axis-aligned box of the given size centered on the
// origin, 12 triangles with outward winding.
func NewBoxGeometry(width, height, depth float64) *Geometry {
	hx, hy, hz := width/2, height/2, depth/2
	positions := []mgl64.Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	indices := []uint32{
		4, 5, 6, 4, 6, 7, // +z
		1, 0, 3, 1, 3, 2, // -z
		5, 1, 2, 5, 2, 6, // +x
		0, 4, 7, 0, 7, 3, // -x
		7, 6, 2, 7, 2, 3, // +y
		0, 1, 5, 0, 5, 4, // -y
	}
	return NewGeometry(positions, indices)
}

// NewQuadGeometry returns a width x height rectangle in the XY plane centered
// on the origin, facing +z. Two triangles: face 0 is the lower-right half,
// face 1 the upper-left half.
func NewQuadGeometry(width, height float64) *Geometry {
	hx, hy := width/2, height/2
	positions := []mgl64.Vec3{
		{-hx, -hy, 0}, {hx, -hy, 0}, {hx, hy, 0}, {-hx, hy, 0},
	}
	return NewGeometry(positions, []uint32{0, 1, 2, 0, 2, 3})
}

// MergeGeometry concatenates geometries into one, returning the merged
// geometry and the first face index of each part. Used to build cross-section
// fills where each part maps back to a different item.
func MergeGeometry(parts ...*Geometry) (*Geometry, []int) {
	var positions []mgl64.Vec3
	var indices []uint32
	firstFace := make([]int, len(parts))
	for i, p := range parts {
		firstFace[i] = len(indices) / 3
		base := uint32(len(positions))
		positions = append(positions, p.Positions...)
		for _, idx := range p.Indices {
			indices = append(indices, base+idx)
		}
	}
	return NewGeometry(positions, indices), firstFace
}

// Translated returns a copy of g with every position offset by d.
func (g *Geometry) Translated(d mgl64.Vec3) *Geometry {
	positions := make([]mgl64.Vec3, len(g.Positions))
	for i, p := range g.Positions {
		positions[i] = p.Add(d)
	}
	indices := make([]uint32, len(g.Indices))
	copy(indices, g.Indices)
	return NewGeometry(positions, indices)
}
