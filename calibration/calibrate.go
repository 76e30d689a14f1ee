// Package calibration derives a subject's static offsets from a static standing trial.
package calibration

import (
	"math"

	"github.com/pkg/errors"

	"go.viam.com/cgm/kinematics"
	"go.viam.com/cgm/logging"
	"go.viam.com/cgm/markers"
	sm "go.viam.com/cgm/spatialmath"
	"go.viam.com/cgm/utils"
)

// ErrNoUsableStaticFrames is returned when no frame of the static trial yields foot offsets for
// both feet.
var ErrNoUsableStaticFrames = errors.New("no static frame has the markers needed to calibrate both feet")

// Options control a calibration run.
type Options struct {
	Mapping markers.Mapping
	// Finder defaults to spatialmath.DefaultJointCenterFinder.
	Finder sm.JointCenterFinder
	// FootFlat moves the heel markers to toe height before building the reference foot axes.
	FootFlat bool
}

// Result is the outcome of a calibration run.
type Result struct {
	// Measurements are the input measurements with derived values filled in.
	Measurements kinematics.Measurements `json:"measurements"`
	Offsets      kinematics.StaticOffsets `json:"offsets"`
	// FootFrames and HeadFrames count the frames that contributed to the averaged offsets.
	FootFrames int `json:"foot_frames"`
	HeadFrames int `json:"head_frames"`
}

// CompleteMeasurements fills measurements that were left at zero: the mean leg length from the leg
// lengths, and each ASIS to trochanter distance from the Davis regression 0.1288·leg - 48.56.
func CompleteMeasurements(m kinematics.Measurements) kinematics.Measurements {
	if m.MeanLegLength == 0 {
		m.MeanLegLength = (m.LeftLegLength + m.RightLegLength) / 2
	}
	legOrMean := func(leg float64) float64 {
		if leg == 0 {
			return m.MeanLegLength
		}
		return leg
	}
	if m.RightAsisToTrocanter == 0 {
		m.RightAsisToTrocanter = 0.1288*legOrMean(m.RightLegLength) - 48.56
	}
	if m.LeftAsisToTrocanter == 0 {
		m.LeftAsisToTrocanter = 0.1288*legOrMean(m.LeftLegLength) - 48.56
	}
	return m
}

// InterAsisDistance returns the mean distance between RASI and LASI over the frames where both
// are present. ok is false when no frame has both.
func InterAsisDistance(trial *markers.Trial, mapping markers.Mapping) (dist float64, ok bool, err error) {
	distances := make([]float64, 0, trial.Len())
	for i := 0; i < trial.Len(); i++ {
		frame, err := trial.Frame(i, mapping)
		if err != nil {
			return 0, false, err
		}
		if !frame.Has(markers.RASI) || !frame.Has(markers.LASI) {
			continue
		}
		distances = append(distances, frame.Point(markers.RASI).Sub(frame.Point(markers.LASI)).Norm())
	}
	dist, ok = utils.FiniteMean(distances)
	return dist, ok, nil
}

// Calibrate runs the static trial through the lower body chain and the head and averages the per
// frame offsets. The measured interASIS distance replaces a zero InterAsisDistance measurement. A
// malformed frame fails the calibration, as does a trial where no frame can calibrate both feet.
func Calibrate(trial *markers.Trial, m kinematics.Measurements, opts Options, logger logging.Logger) (Result, error) {
	if trial == nil || trial.Len() == 0 {
		return Result{}, errors.New("static trial has no frames")
	}
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	finder := opts.Finder
	if finder == nil {
		finder = sm.DefaultJointCenterFinder
	}
	m = CompleteMeasurements(m)

	iad, iadOK, err := InterAsisDistance(trial, opts.Mapping)
	if err != nil {
		return Result{}, errors.Wrap(err, "static trial")
	}
	if m.InterAsisDistance == 0 {
		if !iadOK {
			return Result{}, errors.Wrap(ErrNoUsableStaticFrames, "cannot measure interASIS distance")
		}
		m.InterAsisDistance = iad
	}

	n := trial.Len()
	var (
		rightRot   = make([]float64, 0, n)
		rightFlex  = make([]float64, 0, n)
		leftRot    = make([]float64, 0, n)
		leftFlex   = make([]float64, 0, n)
		headOffset = make([]float64, 0, n)
	)
	uncorrected := kinematics.NewFootCalculator()
	for i := 0; i < n; i++ {
		frame, err := trial.Frame(i, opts.Mapping)
		if err != nil {
			return Result{}, errors.Wrap(err, "static trial")
		}
		ra, rb, la, lb := staticFootOffsets(frame, m, finder, uncorrected, opts.FootFlat)
		if !math.IsNaN(ra+rb+la+lb) {
			rightRot = append(rightRot, ra)
			rightFlex = append(rightFlex, rb)
			leftRot = append(leftRot, la)
			leftFlex = append(leftFlex, lb)
		} else {
			logger.Debugw("static frame skipped for foot offsets", "frame", i)
		}
		if h := staticHeadOffset(frame); !math.IsNaN(h) {
			headOffset = append(headOffset, h)
		}
	}

	if len(rightRot) == 0 {
		return Result{}, ErrNoUsableStaticFrames
	}
	res := Result{Measurements: m, FootFrames: len(rightRot), HeadFrames: len(headOffset)}
	res.Offsets = kinematics.StaticOffsets{
		InterAsisDistance:    m.InterAsisDistance,
		RightStaticRotOff:    -mean(rightRot),
		RightStaticPlantFlex: mean(rightFlex),
		LeftStaticRotOff:     mean(leftRot),
		LeftStaticPlantFlex:  mean(leftFlex),
	}
	if h, ok := utils.FiniteMean(headOffset); ok {
		res.Offsets.HeadOffset = h
	} else {
		logger.Warn("no static frame has all four head markers, head offset set to 0")
	}

	logger.Infow("static calibration complete",
		"foot_frames", res.FootFrames,
		"head_frames", res.HeadFrames,
		"inter_asis_distance", res.Offsets.InterAsisDistance,
		"head_offset", res.Offsets.HeadOffset,
		"right_rot_off", res.Offsets.RightStaticRotOff,
		"right_plant_flex", res.Offsets.RightStaticPlantFlex,
		"left_rot_off", res.Offsets.LeftStaticRotOff,
		"left_plant_flex", res.Offsets.LeftStaticPlantFlex,
	)
	return res, nil
}

func mean(values []float64) float64 {
	m, _ := utils.FiniteMean(values)
	return m
}

// staticFootOffsets runs pelvis → hip → knee → ankle → foot for one static frame and measures the
// foot offsets of both sides. Missing markers give NaN.
func staticFootOffsets(
	frame markers.Frame,
	m kinematics.Measurements,
	finder sm.JointCenterFinder,
	feet kinematics.FootCalculator,
	footFlat bool,
) (rightAlpha, rightBeta, leftAlpha, leftBeta float64) {
	pelvis := kinematics.PelvisAxis(
		frame.Point(markers.RASI), frame.Point(markers.LASI),
		frame.Point(markers.RPSI), frame.Point(markers.LPSI), frame.Point(markers.SACR),
	)
	_, hipCenters := kinematics.HipAxis(pelvis, m)
	knee := kinematics.KneeAxis(
		frame.Point(markers.RTHI), frame.Point(markers.LTHI),
		frame.Point(markers.RKNE), frame.Point(markers.LKNE),
		hipCenters, m, finder,
	)
	ankle := kinematics.AnkleAxis(
		frame.Point(markers.RTIB), frame.Point(markers.LTIB),
		frame.Point(markers.RANK), frame.Point(markers.LANK),
		knee.Origins(), m, finder,
	)
	rtoe, ltoe := frame.Point(markers.RTOE), frame.Point(markers.LTOE)
	foot := feet.FootAxis(rtoe, ltoe, ankle)
	reference := kinematics.FootReferenceAxis(rtoe, ltoe, frame.Point(markers.RHEE), frame.Point(markers.LHEE), ankle, footFlat)
	return footOffsets(foot, reference)
}

// staticHeadOffset measures the head pitch of one static frame, NaN when a head marker is missing.
func staticHeadOffset(frame markers.Frame) float64 {
	head := kinematics.HeadAxis(
		frame.Point(markers.LFHD), frame.Point(markers.RFHD),
		frame.Point(markers.LBHD), frame.Point(markers.RBHD),
		0,
	)
	if head.HasNaN() {
		return math.NaN()
	}
	offset, err := HeadOffsetAngle(globalHeadAxis, head.DirectionMatrix())
	if err != nil {
		return math.NaN()
	}
	return offset
}
