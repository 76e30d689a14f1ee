package kinematics

import (
	"github.com/golang/geo/r3"

	"go.viam.com/cgm/referenceframe"
	sm "go.viam.com/cgm/spatialmath"
)

// WandMarkers builds the virtual shoulder wand markers one unit from the thorax origin. Each is
// perpendicular to the thorax X axis and to the direction of its shoulder marker, which fixes the
// plane in which the shoulder joint center is found.
func WandMarkers(rsho, lsho r3.Vector, thorax referenceframe.Axis) referenceframe.PointPair {
	o := thorax.Origin
	thoraxX := sm.Direction(thorax.X.Sub(o))
	toRight := sm.Direction(rsho.Sub(o))
	toLeft := sm.Direction(lsho.Sub(o))
	return referenceframe.PointPair{
		Right: o.Add(sm.CrossDirection(toRight, thoraxX)),
		Left:  o.Add(sm.CrossDirection(thoraxX, toLeft)),
	}
}

// ShoulderAxis locates both shoulder joint centers and builds the clavicle axes. The joint center
// finder is called once per side, right first, with
// (wand marker, thorax origin, shoulder marker, ShoulderOffset + MarkerRadius).
//
// Z points from the joint center to the thorax origin and Y is taken from the wand marker.
func ShoulderAxis(
	rsho, lsho r3.Vector,
	thorax referenceframe.Axis,
	wand referenceframe.PointPair,
	m Measurements,
	finder sm.JointCenterFinder,
) referenceframe.PairedAxis {
	o := thorax.Origin
	rightDelta := m.RightShoulderOffset + MarkerRadius
	leftDelta := m.LeftShoulderOffset + MarkerRadius

	right := finder.JointCenter(wand.Right, o, rsho, rightDelta)
	left := finder.JointCenter(wand.Left, o, lsho, leftDelta)

	return referenceframe.PairedAxis{
		Right: clavicleAxis(right, o, sm.Direction(wand.Right.Sub(o)).Mul(-1)),
		Left:  clavicleAxis(left, o, sm.Direction(wand.Left.Sub(o))),
	}
}

func clavicleAxis(jc, thoraxOrigin, wandDir r3.Vector) referenceframe.Axis {
	z := sm.Direction(thoraxOrigin.Sub(jc))
	x := sm.CrossDirection(wandDir, z)
	y := sm.Direction(z.Cross(x))
	return referenceframe.NewAxis(jc, x, y, z)
}
