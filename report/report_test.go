package report

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/cgm/gait"
	"go.viam.com/cgm/kinematics"
)

func kneeTrial() *gait.TrialResult {
	res := &gait.TrialResult{}
	for i := 0; i < 12; i++ {
		angle := kinematics.JointAngle{Flexion: 10 + float64(i), Abduction: -2, Rotation: math.Sin(float64(i))}
		if i == 4 || i == 5 {
			angle.Flexion = math.NaN()
		}
		frame := gait.FrameResult{Index: i, Angles: map[gait.Joint]kinematics.JointAngle{
			gait.RightKneeAngle: angle,
			gait.LeftKneeAngle:  {Flexion: math.NaN(), Abduction: math.NaN(), Rotation: math.NaN()},
		}}
		if i == 7 {
			frame = gait.FrameResult{Index: i, Err: errors.New("bad frame")}
			res.Failed = append(res.Failed, i)
		}
		res.Frames = append(res.Frames, frame)
	}
	return res
}

func TestSeries(t *testing.T) {
	flexion := Series(kneeTrial(), gait.RightKneeAngle, Flexion)
	test.That(t, flexion, test.ShouldHaveLength, 12)
	test.That(t, flexion[0], test.ShouldEqual, 10.0)
	test.That(t, math.IsNaN(flexion[4]), test.ShouldBeTrue)
	test.That(t, math.IsNaN(flexion[7]), test.ShouldBeTrue)
	test.That(t, flexion[11], test.ShouldEqual, 21.0)

	for _, v := range Series(kneeTrial(), gait.LeftKneeAngle, Abduction) {
		test.That(t, math.IsNaN(v), test.ShouldBeTrue)
	}
	// joints missing from a frame are undefined too
	test.That(t, math.IsNaN(Series(kneeTrial(), gait.NeckAngle, Rotation)[0]), test.ShouldBeTrue)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(kneeTrial())
	test.That(t, summary, test.ShouldHaveLength, len(gait.Joints))

	var right, left JointSummary
	for _, s := range summary {
		switch s.Joint {
		case gait.RightKneeAngle:
			right = s
		case gait.LeftKneeAngle:
			left = s
		}
	}
	// frames 4, 5 and 7 are missing
	test.That(t, right.Flexion.Frames, test.ShouldEqual, 9)
	test.That(t, right.Flexion.Min, test.ShouldEqual, 10.0)
	test.That(t, right.Flexion.Max, test.ShouldEqual, 21.0)
	test.That(t, right.Flexion.Mean, test.ShouldAlmostEqual, (10+11+12+13+16+17+19+20+21)/9.0, 1e-12)
	test.That(t, right.Abduction.Frames, test.ShouldEqual, 11)
	test.That(t, right.Abduction.Mean, test.ShouldEqual, -2.0)
	test.That(t, left.Flexion, test.ShouldBeNil)
	test.That(t, left.Rotation, test.ShouldBeNil)
}

func TestSummaryTable(t *testing.T) {
	out := SummaryTable(Summarize(kneeTrial()))
	lines := strings.Split(out, "\n")
	// border, header, border, three rows per joint, border
	test.That(t, lines, test.ShouldHaveLength, 3*len(gait.Joints)+4)
	test.That(t, out, test.ShouldContainSubstring, "COMPONENT")

	var knee []string
	for _, line := range lines {
		if strings.Contains(line, " RKnee ") {
			knee = append(knee, line)
		}
	}
	test.That(t, knee, test.ShouldHaveLength, 3)
	test.That(t, knee[0], test.ShouldContainSubstring, "flexion")
	test.That(t, knee[0], test.ShouldContainSubstring, "21.00")
	test.That(t, knee[1], test.ShouldContainSubstring, "-2.00")
	test.That(t, out, test.ShouldContainSubstring, " - ")
}
