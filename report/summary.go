package report

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"

	"go.viam.com/cgm/gait"
)

// Range summarizes one angle component over the frames where it is defined.
type Range struct {
	Frames int     `json:"frames"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// JointSummary is the range of each component of one joint.
type JointSummary struct {
	Joint     gait.Joint `json:"joint"`
	Flexion   *Range     `json:"flexion,omitempty"`
	Abduction *Range     `json:"abduction,omitempty"`
	Rotation  *Range     `json:"rotation,omitempty"`
}

// Range returns the range of component c, nil when c is undefined in every frame.
func (s JointSummary) Range(c Component) *Range {
	switch c {
	case Flexion:
		return s.Flexion
	case Abduction:
		return s.Abduction
	case Rotation:
		return s.Rotation
	}
	return nil
}

func finiteValues(values []float64) stats.Float64Data {
	return lo.Filter(values, func(v float64, _ int) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})
}

func summarize(values []float64) *Range {
	data := finiteValues(values)
	if data.Len() == 0 {
		return nil
	}
	// none of these fail on a non-empty input
	mean, _ := data.Mean()
	low, _ := data.Min()
	high, _ := data.Max()
	return &Range{Frames: data.Len(), Mean: mean, Min: low, Max: high}
}

// Summarize computes the range of every joint angle over the frames of res. Undefined values are
// left out; a component with no defined value is nil.
func Summarize(res *gait.TrialResult) []JointSummary {
	return lo.Map(gait.Joints, func(joint gait.Joint, _ int) JointSummary {
		return JointSummary{
			Joint:     joint,
			Flexion:   summarize(Series(res, joint, Flexion)),
			Abduction: summarize(Series(res, joint, Abduction)),
			Rotation:  summarize(Series(res, joint, Rotation)),
		}
	})
}
