package kinematics

import (
	"encoding/json"
	"math"

	"go.viam.com/cgm/referenceframe"
	sm "go.viam.com/cgm/spatialmath"
	"go.viam.com/cgm/utils"
)

// JointAngle is the orientation of a distal segment relative to its proximal segment, in degrees.
type JointAngle struct {
	Flexion   float64 `json:"flexion"`
	Abduction float64 `json:"abduction"`
	Rotation  float64 `json:"rotation"`
}

// IsNaN reports whether any component is NaN.
func (a JointAngle) IsNaN() bool {
	return math.IsNaN(a.Flexion) || math.IsNaN(a.Abduction) || math.IsNaN(a.Rotation)
}

// MarshalJSON encodes the angle as an object whose NaN components are null.
func (a JointAngle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Flexion   *float64 `json:"flexion"`
		Abduction *float64 `json:"abduction"`
		Rotation  *float64 `json:"rotation"`
	}{finite(a.Flexion), finite(a.Abduction), finite(a.Rotation)})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// JointAngles decomposes the rotation from proximal to distal as a Y-X-Z Cardan sequence: flexion
// about the proximal Y axis, then abduction about the rotated X axis, then rotation about the
// distal Z axis. Identical axes give zero angles. Both axes are used as directions only, their
// origins are ignored.
func JointAngles(proximal, distal referenceframe.Axis) JointAngle {
	px, py, pz := proximal.Directions()
	dx, dy, dz := distal.Directions()
	px, py, pz = sm.Direction(px), sm.Direction(py), sm.Direction(pz)
	dx, dy, dz = sm.Direction(dx), sm.Direction(dy), sm.Direction(dz)

	sinAbduction := -py.Dot(dz)
	// keep asin in its domain when rounding pushes the dot product past 1
	sinAbduction = math.Max(-1, math.Min(1, sinAbduction))

	return JointAngle{
		Flexion:   utils.RadToDeg(math.Atan2(px.Dot(dz), pz.Dot(dz))),
		Abduction: utils.RadToDeg(math.Asin(sinAbduction)),
		Rotation:  utils.RadToDeg(math.Atan2(py.Dot(dx), py.Dot(dy))),
	}
}
