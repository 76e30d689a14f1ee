// Package spatialmath holds the vector and rotation primitives shared by every segment calculator.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Cross returns the cross product a × b.
func Cross(a, b r3.Vector) r3.Vector {
	return a.Cross(b)
}

// Dot returns the dot product of a and b.
func Dot(a, b r3.Vector) float64 {
	return a.Dot(b)
}

// Length returns the euclidean length of v.
func Length(v r3.Vector) float64 {
	return v.Norm()
}

// Unit returns v scaled to length 1. A zero vector has no direction and yields a DegenerateVectorError.
func Unit(v r3.Vector) (r3.Vector, error) {
	n := v.Norm()
	if n == 0 {
		return r3.Vector{}, NewDegenerateVectorError(v)
	}
	return v.Mul(1 / n), nil
}

// Direction is the NaN propagating counterpart of Unit used inside the axis calculators: a zero or
// NaN vector produces a NaN vector instead of an error so that missing markers flow through a frame.
func Direction(v r3.Vector) r3.Vector {
	n := v.Norm()
	if n == 0 {
		return NaNVector()
	}
	return v.Mul(1 / n)
}

// parallelTolerance bounds |a × b| / (|a||b|), the sine of the angle between two vectors, below
// which they are treated as parallel. Rounding leaves parallel inputs around 1e-16.
const parallelTolerance = 1e-12

// CrossDirection returns the unit vector along a × b. Parallel, zero or NaN inputs have no
// perpendicular and produce a NaN vector, so the residue left by rounding is never normalized into
// an arbitrary direction.
func CrossDirection(a, b r3.Vector) r3.Vector {
	c := a.Cross(b)
	n := c.Norm()
	if !(n > parallelTolerance*a.Norm()*b.Norm()) {
		return NaNVector()
	}
	return c.Mul(1 / n)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b r3.Vector) r3.Vector {
	return a.Add(b).Mul(0.5)
}

// GramSchmidt removes from v its component along axis. axis must already be unit length.
func GramSchmidt(v, axis r3.Vector) r3.Vector {
	return v.Sub(axis.Mul(v.Dot(axis)))
}

// NaNVector returns a vector whose components are all NaN.
func NaNVector() r3.Vector {
	return r3.Vector{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
}

// IsNaNVector reports whether any component of v is NaN.
func IsNaNVector(v r3.Vector) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// IsFiniteVector reports whether every component of v is a finite number.
func IsFiniteVector(v r3.Vector) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// VectorFromSlice converts a 3 element slice into a vector.
func VectorFromSlice(s []float64) (r3.Vector, error) {
	if len(s) != 3 {
		return r3.Vector{}, NewInvalidInputErrorf("", "expected 3 coordinates, got %d", len(s))
	}
	return r3.Vector{X: s[0], Y: s[1], Z: s[2]}, nil
}

// VectorToSlice returns v as a 3 element slice.
func VectorToSlice(v r3.Vector) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
