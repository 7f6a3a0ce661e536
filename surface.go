package highlight

import "github.com/go-gl/mathgl/mgl64"

// Intersection is one ray hit on a Surface.
type Intersection struct {
	// Distance is the ray parameter of the hit (world units from the origin).
	Distance float64
	// Point is the world-space hit position.
	Point mgl64.Vec3
	// Face is the triangle index within the surface geometry.
	Face int
	// Instance is the instance index for instanced surfaces, -1 otherwise.
	Instance int
	// Surface is the object that was hit.
	Surface Surface
}

// Surface is anything the Raycaster can hit and the Highlighter can turn into
// logical items. Fragments resolve through their instance table and owning
// model; fill meshes resolve through their per-face index.
type Surface interface {
	// SurfaceID returns a stable identifier, unique within a World.
	SurfaceID() string
	// Raycast appends every intersection of r with the surface to hits.
	Raycast(r Ray, hits []Intersection) []Intersection
	// ResolveHit maps a hit to the logical item it represents and every
	// (mesh, item) pair of that item. A nil map with a nil error means the hit
	// does not correspond to any item.
	ResolveHit(hit Intersection) (itemID uint32, items FragmentIDMap, err error)
}
