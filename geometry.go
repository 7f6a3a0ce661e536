package highlight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line in world space. Direction is normalized by NewRay.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay returns a ray with a normalized direction.
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is a half-space boundary defined by a point on the plane and its
// normal. The visible side is the one the normal points to.
type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// NewPlane returns a plane with a normalized normal.
func NewPlane(point, normal mgl64.Vec3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// SignedDistance returns dot(normal, p - point).
func (p Plane) SignedDistance(pt mgl64.Vec3) float64 {
	return p.Normal.Dot(pt.Sub(p.Point))
}

// Visible reports whether pt lies strictly on the positive side of the plane.
// Points exactly on the plane are not visible.
func (p Plane) Visible(pt mgl64.Vec3) bool {
	return p.SignedDistance(pt) > 0
}

// Box3 is an axis-aligned bounding box. The zero value is not empty; use
// EmptyBox3 to start an accumulation.
type Box3 struct {
	Min, Max mgl64.Vec3
}

// EmptyBox3 returns a box that contains nothing and grows with ExpandByPoint.
func EmptyBox3() Box3 {
	inf := math.Inf(1)
	return Box3{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// ExpandByPoint grows the box to contain p.
func (b *Box3) ExpandByPoint(p mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
}

// Union grows the box to contain o. Empty boxes are ignored.
func (b *Box3) Union(o Box3) {
	if o.IsEmpty() {
		return
	}
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

// Center returns the midpoint of the box.
func (b Box3) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Transform returns the AABB of b's eight corners transformed by m.
func (b Box3) Transform(m mgl64.Mat4) Box3 {
	if b.IsEmpty() {
		return b
	}
	out := EmptyBox3()
	for i := 0; i < 8; i++ {
		c := mgl64.Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		out.ExpandByPoint(mgl64.TransformCoordinate(c, m))
	}
	return out
}

// BoundingSphere returns the sphere centered on the box that touches its
// corners. An empty box yields a sphere with infinite components.
func (b Box3) BoundingSphere() Sphere {
	if b.IsEmpty() {
		inf := math.Inf(1)
		return Sphere{Center: mgl64.Vec3{inf, inf, inf}, Radius: math.Inf(-1)}
	}
	return Sphere{Center: b.Center(), Radius: b.Max.Sub(b.Min).Len() / 2}
}

// IntersectRay returns the entry distance of r into the box using the slab
// method. When the origin is inside, the exit distance is returned.
func (b Box3) IntersectRay(r Ray) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	for i := 0; i < 3; i++ {
		if r.Direction[i] == 0 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Direction[i]
		t1 := (b.Min[i] - r.Origin[i]) * inv
		t2 := (b.Max[i] - r.Origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Sphere is a bounding sphere in world space.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Degenerate reports whether the sphere cannot be framed: zero radius, or any
// component that is infinite or NaN.
func (s Sphere) Degenerate() bool {
	if s.Radius == 0 {
		return true
	}
	for _, v := range [4]float64{s.Center[0], s.Center[1], s.Center[2], s.Radius} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return true
		}
	}
	return false
}

// intersectTriangle implements the Möller–Trumbore ray-triangle test and
// returns the ray parameter of the hit.
func intersectTriangle(r Ray, v0, v1, v2 mgl64.Vec3) (float64, bool) {
	const epsilon = 1e-9

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, false // parallel
	}

	f := 1 / a
	s := r.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	return t, t > epsilon
}
