// Package report reduces processed trials to per-frame angle series and per-joint summaries.
package report

import (
	"math"

	"go.viam.com/cgm/gait"
	"go.viam.com/cgm/kinematics"
)

// Component selects one value of a JointAngle.
type Component string

// The components of a joint angle.
const (
	Flexion   Component = "flexion"
	Abduction Component = "abduction"
	Rotation  Component = "rotation"
)

// Components lists the angle components in output order.
var Components = []Component{Flexion, Abduction, Rotation}

// Value returns component c of a.
func (c Component) Value(a kinematics.JointAngle) float64 {
	switch c {
	case Flexion:
		return a.Flexion
	case Abduction:
		return a.Abduction
	case Rotation:
		return a.Rotation
	}
	return math.NaN()
}

// Series returns component c of joint for every frame. Failed frames give NaN.
func Series(res *gait.TrialResult, joint gait.Joint, c Component) []float64 {
	out := make([]float64, len(res.Frames))
	for i, frame := range res.Frames {
		angle, ok := frame.Angles[joint]
		if frame.Failed() || !ok {
			out[i] = math.NaN()
			continue
		}
		out[i] = c.Value(angle)
	}
	return out
}
