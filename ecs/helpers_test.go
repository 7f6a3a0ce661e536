package ecs

import "github.com/go-gl/mathgl/mgl64"

func mglVec(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

func identity() mgl64.Mat4 { return mgl64.Ident4() }
