package xyz

import "math"

// Pi is π for any float type.
func Pi[T Float]() T { return T(math.Pi) }

// ToRadians converts deg from degrees to radians.
func ToRadians[T Float](deg T) T { return deg * T(math.Pi) / 180 }

// ToDegrees converts rad from radians to degrees.
func ToDegrees[T Float](rad T) T { return rad * 180 / T(math.Pi) }
