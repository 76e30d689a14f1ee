package kinematics

import (
	"github.com/golang/geo/r3"

	"go.viam.com/cgm/referenceframe"
	sm "go.viam.com/cgm/spatialmath"
)

// elbowConstructionLength is how far from the elbow marker the virtual point used to find the
// elbow joint center is placed, in millimeters.
const elbowConstructionLength = 500.0

// ArmMarkers are the markers of one arm.
type ArmMarkers struct {
	ELB r3.Vector
	// WRA and WRB are the thumb and pinkie side wrist bar markers.
	WRA r3.Vector
	WRB r3.Vector
	FIN r3.Vector
}

// ElbowWristAxis locates the elbow and wrist joint centers of both arms and returns the humerus
// axes at the elbow joint centers and the radius axes at the wrist joint centers.
//
// The elbow joint center lies in the plane spanned by the shoulder joint center, the elbow marker
// and the wrist marker midpoint. The finder is called once per side, right first, with
// (construction point, shoulder joint center, elbow marker, delta), where delta is
// -(ElbowWidth/2 + MarkerRadius) on the right and ElbowWidth/2 + MarkerRadius on the left.
func ElbowWristAxis(
	right, left ArmMarkers,
	shoulder referenceframe.PointPair,
	m Measurements,
	finder sm.JointCenterFinder,
) (elbow, wrist referenceframe.PairedAxis) {
	rightDelta := -m.RightElbowWidth/2 - MarkerRadius
	leftDelta := m.LeftElbowWidth/2 + MarkerRadius

	rightEJC := finder.JointCenter(elbowConstructionPoint(right, shoulder.Right), shoulder.Right, right.ELB, rightDelta)
	leftEJC := finder.JointCenter(elbowConstructionPoint(left, shoulder.Left), shoulder.Left, left.ELB, leftDelta)

	rightWJC := wristJointCenter(right, rightEJC, m.RightWristWidth, 1)
	leftWJC := wristJointCenter(left, leftEJC, m.LeftWristWidth, -1)

	rightElbow := humerusAxis(rightEJC, shoulder.Right, rightWJC)
	leftElbow := humerusAxis(leftEJC, shoulder.Left, leftWJC)

	elbow = referenceframe.PairedAxis{Right: rightElbow, Left: leftElbow}
	wrist = referenceframe.PairedAxis{
		Right: radiusAxis(rightWJC, rightEJC, rightElbow),
		Left:  radiusAxis(leftWJC, leftEJC, leftElbow),
	}
	return elbow, wrist
}

func wristMidpoint(arm ArmMarkers) r3.Vector {
	return sm.Midpoint(arm.WRA, arm.WRB)
}

func elbowConstructionPoint(arm ArmMarkers, sjc r3.Vector) r3.Vector {
	toShoulder := sm.Direction(sjc.Sub(arm.ELB))
	toWrist := sm.Direction(wristMidpoint(arm).Sub(arm.ELB))
	return arm.ELB.Add(sm.CrossDirection(toShoulder, toWrist).Mul(elbowConstructionLength))
}

// wristJointCenter offsets the wrist marker midpoint by half the wrist width plus the marker radius
// along the Y axis of the forearm frame; side is 1 on the right and -1 on the left.
func wristJointCenter(arm ArmMarkers, ejc r3.Vector, wristWidth, side float64) r3.Vector {
	wri := wristMidpoint(arm)
	x := sm.Direction(arm.WRA.Sub(arm.WRB))
	z := sm.Direction(ejc.Sub(wri))
	y := sm.CrossDirection(z, x)
	return wri.Add(y.Mul(side * (wristWidth/2 + MarkerRadius)))
}

func humerusAxis(ejc, sjc, wjc r3.Vector) referenceframe.Axis {
	z := sm.Direction(sjc.Sub(ejc))
	x := sm.Direction(wjc.Sub(ejc))
	y := sm.CrossDirection(x, z)
	x = sm.Direction(y.Cross(z))
	return referenceframe.NewAxis(ejc, x, y, z)
}

func radiusAxis(wjc, ejc r3.Vector, elbow referenceframe.Axis) referenceframe.Axis {
	_, elbowY, _ := elbow.Directions()
	y := sm.Direction(elbowY)
	z := sm.Direction(ejc.Sub(wjc))
	x := sm.CrossDirection(y, z)
	y = sm.Direction(z.Cross(x))
	return referenceframe.NewAxis(wjc, x, y, z)
}

// HandAxis locates both hand joint centers and builds the hand axes. The finder is called once
// per side, right first, with (wrist marker midpoint, wrist joint center, finger marker,
// HandThickness/2 + MarkerRadius).
func HandAxis(
	right, left ArmMarkers,
	wrist referenceframe.PointPair,
	m Measurements,
	finder sm.JointCenterFinder,
) referenceframe.PairedAxis {
	rightWRI := wristMidpoint(right)
	leftWRI := wristMidpoint(left)

	rightHJC := finder.JointCenter(rightWRI, wrist.Right, right.FIN, m.RightHandThickness/2+MarkerRadius)
	leftHJC := finder.JointCenter(leftWRI, wrist.Left, left.FIN, m.LeftHandThickness/2+MarkerRadius)

	return referenceframe.PairedAxis{
		Right: handAxis(rightHJC, wrist.Right, right.WRA.Sub(rightWRI)),
		Left:  handAxis(leftHJC, wrist.Left, leftWRI.Sub(left.WRA)),
	}
}

func handAxis(hjc, wjc, across r3.Vector) referenceframe.Axis {
	z := sm.Direction(wjc.Sub(hjc))
	y := sm.Direction(across)
	x := sm.CrossDirection(y, z)
	y = sm.Direction(z.Cross(x))
	return referenceframe.NewAxis(hjc, x, y, z)
}
