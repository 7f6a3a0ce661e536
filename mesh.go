package highlight

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is an indexed triangle list in local space. Every three entries of
// Indices form one face; the face index is the triangle number.
type Geometry struct {
	Positions []mgl64.Vec3
	Indices   []uint32

	bounds      Box3
	boundsDirty bool
}

// NewGeometry creates a Geometry from positions and triangle indices.
func NewGeometry(positions []mgl64.Vec3, indices []uint32) *Geometry {
	return &Geometry{Positions: positions, Indices: indices, boundsDirty: true}
}

// FaceCount returns the number of triangles.
func (g *Geometry) FaceCount() int {
	return len(g.Indices) / 3
}

// MarkDirty invalidates the cached bounds. Call it after editing Positions.
func (g *Geometry) MarkDirty() {
	g.boundsDirty = true
}

// Bounds returns the local-space AABB of the positions referenced by Indices.
func (g *Geometry) Bounds() Box3 {
	if !g.boundsDirty {
		return g.bounds
	}
	g.boundsDirty = false
	b := EmptyBox3()
	for _, idx := range g.Indices {
		if int(idx) < len(g.Positions) {
			b.ExpandByPoint(g.Positions[idx])
		}
	}
	g.bounds = b
	return b
}

// raycast appends every face of g hit by r (with g placed by world) to hits.
// The AABB test is a broad phase only; every hit triangle is reported so that
// callers filtering by clipping planes can fall back to deeper faces.
func (g *Geometry) raycast(r Ray, world mgl64.Mat4, hits []Intersection) []Intersection {
	if _, ok := g.Bounds().Transform(world).IntersectRay(r); !ok {
		return hits
	}
	n := len(g.Positions)
	for i := 0; i+2 < len(g.Indices); i += 3 {
		i0, i1, i2 := g.Indices[i], g.Indices[i+1], g.Indices[i+2]
		if int(i0) >= n || int(i1) >= n || int(i2) >= n {
			continue
		}
		v0 := mgl64.TransformCoordinate(g.Positions[i0], world)
		v1 := mgl64.TransformCoordinate(g.Positions[i1], world)
		v2 := mgl64.TransformCoordinate(g.Positions[i2], world)
		t, ok := intersectTriangle(r, v0, v1, v2)
		if !ok {
			continue
		}
		hits = append(hits, Intersection{
			Distance: t,
			Point:    r.At(t),
			Face:     i / 3,
			Instance: -1,
		})
	}
	return hits
}
