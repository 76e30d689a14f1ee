package kinematics

import (
	"github.com/golang/geo/r3"

	"go.viam.com/cgm/referenceframe"
	sm "go.viam.com/cgm/spatialmath"
)

// KneeAxis locates both knee joint centers from the thigh wand and knee markers and builds the
// femur axes. The joint center finder is called once per side, right first, with
// (thigh marker, hip joint center, knee marker, KneeWidth/2 + MarkerRadius).
//
// Z points from the knee joint center to the hip joint center and X points laterally.
func KneeAxis(
	rthi, lthi, rkne, lkne r3.Vector,
	hip referenceframe.PointPair,
	m Measurements,
	finder sm.JointCenterFinder,
) referenceframe.PairedAxis {
	rightDelta := m.RightKneeWidth/2 + MarkerRadius
	leftDelta := m.LeftKneeWidth/2 + MarkerRadius

	right := finder.JointCenter(rthi, hip.Right, rkne, rightDelta)
	left := finder.JointCenter(lthi, hip.Left, lkne, leftDelta)

	return referenceframe.PairedAxis{
		Right: lateralAxis(right, hip.Right, rkne.Sub(right), true),
		Left:  lateralAxis(left, hip.Left, lkne.Sub(left), false),
	}
}

// AnkleAxis locates both ankle joint centers from the tibia wand and ankle markers and builds the
// tibia axes, then rotates each about its Z axis by the tibial torsion. The joint center finder
// is called once per side, right first, with (tibia marker, knee joint center, ankle marker,
// AnkleWidth/2 + MarkerRadius).
func AnkleAxis(
	rtib, ltib, rank, lank r3.Vector,
	knee referenceframe.PointPair,
	m Measurements,
	finder sm.JointCenterFinder,
) referenceframe.PairedAxis {
	rightDelta := m.RightAnkleWidth/2 + MarkerRadius
	leftDelta := m.LeftAnkleWidth/2 + MarkerRadius

	right := finder.JointCenter(rtib, knee.Right, rank, rightDelta)
	left := finder.JointCenter(ltib, knee.Left, lank, leftDelta)

	rightAxis := lateralAxis(right, knee.Right, rtib.Sub(rank), true)
	leftAxis := lateralAxis(left, knee.Left, ltib.Sub(lank), false)

	return referenceframe.PairedAxis{
		Right: rightAxis.Rotate(sm.RotationMatrix(0, 0, m.RightTibialTorsion)),
		Left:  leftAxis.Rotate(sm.RotationMatrix(0, 0, -m.LeftTibialTorsion)),
	}
}

// lateralAxis builds a limb axis at jc whose Z points at the proximal joint center. X is Z × lateral
// on the right and lateral × Z on the left, giving X the same anatomical sense on both sides. A lateral
// vector parallel to Z leaves X and Y undefined.
func lateralAxis(jc, proximal, lateral r3.Vector, right bool) referenceframe.Axis {
	toProximal := proximal.Sub(jc)
	z := sm.Direction(toProximal)
	var x r3.Vector
	if right {
		x = sm.CrossDirection(toProximal, lateral)
	} else {
		x = sm.CrossDirection(lateral, toProximal)
	}
	y := sm.Direction(z.Cross(x))
	return referenceframe.NewAxis(jc, x, y, z)
}
