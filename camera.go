package highlight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// frameAnim holds the active fly-to tweens: position XYZ then target XYZ.
type frameAnim struct {
	tweens [6]*gween.Tween
	done   [6]bool
	to     [6]float64
}

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	// Fov is the vertical field of view in degrees.
	Fov float64
	// Aspect is viewport width over height.
	Aspect    float64
	Near, Far float64

	anim *frameAnim
}

// NewCamera creates a camera at position looking at target with a 60 degree
// field of view.
func NewCamera(position, target mgl64.Vec3, aspect float64) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       mgl64.Vec3{0, 1, 0},
		Fov:      60,
		Aspect:   aspect,
		Near:     0.1,
		Far:      1000,
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the camera-to-clip matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// Direction returns the unit vector from Position toward Target.
func (c *Camera) Direction() mgl64.Vec3 {
	d := c.Target.Sub(c.Position)
	if d.Len() == 0 {
		return mgl64.Vec3{0, 0, -1}
	}
	return d.Normalize()
}

// RayFromNDC returns the world-space ray through a point in normalized device
// coordinates, x and y in [-1, 1] with y up.
func (c *Camera) RayFromNDC(ndc mgl64.Vec2) Ray {
	inv := c.Projection().Mul4(c.View()).Inv()
	p := mgl64.TransformCoordinate(mgl64.Vec3{ndc.X(), ndc.Y(), 0.5}, inv)
	return NewRay(c.Position, p.Sub(c.Position))
}

// FitToSphere moves the camera back along its view direction until s fills
// the narrower field of view, keeping the direction unchanged. A duration of
// zero or less snaps immediately; otherwise Update advances the flight.
func (c *Camera) FitToSphere(s Sphere, duration float32, easeFn ease.TweenFunc) {
	vHalf := mgl64.DegToRad(c.Fov) / 2
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	hHalf := math.Atan(math.Tan(vHalf) * aspect)
	dist := s.Radius / math.Sin(math.Min(vHalf, hHalf))

	pos := s.Center.Sub(c.Direction().Mul(dist))
	if duration <= 0 || easeFn == nil {
		c.anim = nil
		c.Position = pos
		c.Target = s.Center
		return
	}
	from := [6]float64{c.Position[0], c.Position[1], c.Position[2], c.Target[0], c.Target[1], c.Target[2]}
	to := [6]float64{pos[0], pos[1], pos[2], s.Center[0], s.Center[1], s.Center[2]}
	a := &frameAnim{to: to}
	for i := range a.tweens {
		a.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, easeFn)
	}
	c.anim = a
}

// Animating reports whether a FitToSphere flight is in progress.
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// Update advances the camera flight by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.anim == nil {
		return
	}
	var vals [6]float64
	allDone := true
	for i, tw := range c.anim.tweens {
		if c.anim.done[i] {
			vals[i] = c.anim.to[i]
			continue
		}
		val, done := tw.Update(dt)
		vals[i] = float64(val)
		c.anim.done[i] = done
		if done {
			// tweens run in float32; land exactly on the target
			vals[i] = c.anim.to[i]
		} else {
			allDone = false
		}
	}
	c.Position = mgl64.Vec3{vals[0], vals[1], vals[2]}
	c.Target = mgl64.Vec3{vals[3], vals[4], vals[5]}
	if allDone {
		c.anim = nil
	}
}
