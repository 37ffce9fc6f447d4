// Package coord converts between cartesian coordinates and other
// coordinate systems.
package coord

import (
	"fmt"

	"deedles.dev/xyz"
	"deedles.dev/xyz/internal/fmath"
)

// SphericalPoint is a point in 3D space given by its distance from the
// origin, the angle of its projection onto the xy-plane
// counterclockwise from the x axis, and the angle between it and the
// xy-plane, positive above it. Angles are in radians.
type SphericalPoint[T xyz.Float] struct {
	Radius  T
	Azimuth T
	Polar   T
}

func (p SphericalPoint[T]) String() string {
	return fmt.Sprintf("(r=%v, az=%v, pol=%v)", p.Radius, p.Azimuth, p.Polar)
}

// ToCartesian returns the cartesian coordinates of p.
func (p SphericalPoint[T]) ToCartesian() xyz.Vector[T] {
	ca, sa := fmath.Cos(p.Azimuth), fmath.Sin(p.Azimuth)
	cp, sp := fmath.Cos(p.Polar), fmath.Sin(p.Polar)
	return xyz.Vec3(
		p.Radius*cp*ca,
		p.Radius*cp*sa,
		p.Radius*sp,
	)
}

// SphericalFromCartesian returns the spherical coordinates of the 3D
// point v. The azimuth is in (-π, π] and the polar angle in
// [-π/2, π/2]. The angles of the origin are zero.
func SphericalFromCartesian[T xyz.Float](v xyz.Vector[T]) SphericalPoint[T] {
	r := xyz.Length(v)
	if r == 0 {
		return SphericalPoint[T]{}
	}
	return SphericalPoint[T]{
		Radius:  r,
		Azimuth: fmath.Atan2(v.Y(), v.X()),
		Polar:   fmath.Asin(v.Z() / r),
	}
}

// PolarPoint is a point in 2D space given by its distance from the
// origin and its angle counterclockwise from the x axis in radians.
type PolarPoint[T xyz.Float] struct {
	Radius T
	Angle  T
}

// ToCartesian returns the cartesian coordinates of p.
func (p PolarPoint[T]) ToCartesian() xyz.Vector[T] {
	return xyz.Vec2(p.Radius*fmath.Cos(p.Angle), p.Radius*fmath.Sin(p.Angle))
}

// PolarFromCartesian returns the polar coordinates of the 2D point v.
// The angle is in (-π, π].
func PolarFromCartesian[T xyz.Float](v xyz.Vector[T]) PolarPoint[T] {
	return PolarPoint[T]{
		Radius: xyz.Length(v),
		Angle:  fmath.Atan2(v.Y(), v.X()),
	}
}
