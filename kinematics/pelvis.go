package kinematics

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/cgm/referenceframe"
	sm "go.viam.com/cgm/spatialmath"
)

// PelvisAxis builds the pelvis coordinate system from the anterior superior iliac spine markers and
// either the sacrum marker or both posterior superior iliac spine markers. An absent marker is a
// NaN vector; SACR is used whenever it is present.
//
// The origin is the midpoint of RASI and LASI. Y points from RASI to LASI, X points forward from
// the sacrum and is made orthogonal to Y, and Z = X × Y points up. When the directions cannot be
// resolved the axis points are NaN and the origin is still returned.
func PelvisAxis(rasi, lasi, rpsi, lpsi, sacr r3.Vector) referenceframe.Axis {
	sacrum := sacr
	if sm.IsNaNVector(sacr) {
		sacrum = sm.Midpoint(rpsi, lpsi)
	}
	origin := sm.Midpoint(rasi, lasi)

	y := sm.Direction(lasi.Sub(rasi))
	x := sm.Direction(sm.GramSchmidt(origin.Sub(sacrum), y))
	z := x.Cross(y)
	return referenceframe.NewAxis(origin, x, y, z)
}

// Hip joint center regression constants from Davis et al. (1991).
const (
	hipTheta = 0.500000178813934
	hipBeta  = 0.314000427722931
)

// HipAxis locates both hip joint centers with the Davis regression and returns the hip axis,
// which has the pelvis directions placed at the midpoint of the two centers.
//
// The offsets are applied along the pelvis directions exactly as given, without renormalizing.
func HipAxis(pelvis referenceframe.Axis, m Measurements) (referenceframe.Axis, referenceframe.PointPair) {
	px, py, pz := pelvis.Directions()

	c := m.MeanLegLength*0.115 - 15.3
	aa := m.InterAsisDistance / 2
	sinTheta, cosTheta := math.Sincos(hipTheta)
	sinBeta, cosBeta := math.Sincos(hipBeta)

	offset := func(asisTroc, side float64) r3.Vector {
		xh := (-asisTroc-MarkerRadius)*cosBeta + c*cosTheta*sinBeta
		yh := side * (c*sinTheta - aa)
		zh := (-asisTroc-MarkerRadius)*sinBeta - c*cosTheta*cosBeta
		return pelvis.Origin.Add(px.Mul(xh)).Add(py.Mul(yh)).Add(pz.Mul(zh))
	}

	centers := referenceframe.PointPair{
		Right: offset(m.RightAsisToTrocanter, 1),
		Left:  offset(m.LeftAsisToTrocanter, -1),
	}
	return pelvis.Translate(sm.Midpoint(centers.Right, centers.Left)), centers
}
