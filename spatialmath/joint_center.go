package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// A JointCenterFinder estimates a joint center from three coplanar markers and the distance
// from the lateral marker to the joint center.
type JointCenterFinder interface {
	JointCenter(a, b, c r3.Vector, delta float64) r3.Vector
}

// JointCenterFunc adapts a plain function to a JointCenterFinder.
type JointCenterFunc func(a, b, c r3.Vector, delta float64) r3.Vector

// JointCenter calls f(a, b, c, delta).
func (f JointCenterFunc) JointCenter(a, b, c r3.Vector, delta float64) r3.Vector {
	return f(a, b, c, delta)
}

// DefaultJointCenterFinder is the closed form FindJointCenter.
var DefaultJointCenterFinder JointCenterFinder = JointCenterFunc(FindJointCenter)

// FindJointCenter locates the joint center that lies in the plane of a, b and c, at distance
// delta from c, such that the segment from b to the joint center is perpendicular to the segment
// from the joint center to c. The vector c→b is rotated about the plane normal by twice the
// angle acos(delta/|b-c|) using Rodrigues' formula, scaled to half of |b-c| and placed at the
// midpoint of b and c.
//
// Collinear markers or a delta longer than |b-c| produce a NaN vector.
func FindJointCenter(a, b, c r3.Vector, delta float64) r3.Vector {
	v1 := a.Sub(c)
	v2 := b.Sub(c)
	normal := Direction(v1.Cross(v2))

	mid := Midpoint(b, c)
	length := b.Sub(mid).Norm()

	theta := math.Acos(delta / v2.Norm())
	r := rodrigues(v2, normal, 2*theta)
	return r.Mul(length / r.Norm()).Add(mid)
}

// rodrigues rotates v about the unit axis k by angle radians.
func rodrigues(v, k r3.Vector, angle float64) r3.Vector {
	sn, cs := math.Sincos(angle)
	return v.Mul(cs).Add(k.Cross(v).Mul(sn)).Add(k.Mul(k.Dot(v) * (1 - cs)))
}
