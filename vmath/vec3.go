package vmath

import "math"

// Vec3 is a float64 3D point/vector in world meters
// Z is the travel axis; targets move toward -Z (toward the player)
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

// V3Dist returns the euclidean distance between two points
func V3Dist(a, b Vec3) float64 {
	return V3Mag(V3Sub(a, b))
}

// Back is the unit travel direction of targets
var Back = Vec3{0, 0, -1}
