package highlight

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Raycaster turns the pointer position into the nearest visible hit. Hits on
// the clipped-away side of any enabled clipping plane are ignored so picking
// falls through to what is actually on screen.
type Raycaster struct {
	world   *World
	pointer *PointerTracker
}

// NewRaycaster creates a raycaster for w. The pointer tracker may be nil, in
// which case only Pick and PickFromRay can be used.
func NewRaycaster(w *World, pointer *PointerTracker) *Raycaster {
	return &Raycaster{world: w, pointer: pointer}
}

// CastRay casts from the camera through the current pointer position. It
// returns nil when nothing visible is hit or no pointer position is known
// yet. With no candidates given, every surface of the world is tested.
func (rc *Raycaster) CastRay(candidates ...Surface) (*Intersection, error) {
	cam := rc.world.Camera()
	if cam == nil {
		return nil, ErrNoCamera
	}
	if rc.world.Viewport() == nil || rc.pointer == nil {
		return nil, ErrNoViewport
	}
	ndc, ok := rc.pointer.Position()
	if !ok {
		return nil, nil
	}
	if candidates == nil {
		candidates = rc.world.Candidates()
	}
	return rc.Pick(candidates, cam, ndc), nil
}

// Pick casts from cam through ndc against candidates.
func (rc *Raycaster) Pick(candidates []Surface, cam *Camera, ndc mgl64.Vec2) *Intersection {
	r := cam.RayFromNDC(ndc)
	return rc.PickFromRay(r.Origin, r.Direction, candidates)
}

// PickFromRay returns the nearest hit of the ray against candidates that is
// not clipped away, or nil.
func (rc *Raycaster) PickFromRay(origin, direction mgl64.Vec3, candidates []Surface) *Intersection {
	r := NewRay(origin, direction)
	var hits []Intersection
	for _, s := range candidates {
		hits = s.Raycast(r, hits)
	}
	if len(hits) == 0 {
		return nil
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	planes := rc.world.ActivePlanes()
	for i := range hits {
		if visible(hits[i].Point, planes) {
			hit := hits[i]
			return &hit
		}
	}
	return nil
}

// visible reports whether p lies strictly on the kept side of every plane.
func visible(p mgl64.Vec3, planes []Plane) bool {
	for _, pl := range planes {
		if !pl.Visible(p) {
			return false
		}
	}
	return true
}
