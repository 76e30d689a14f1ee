// Package gait runs the segment axis calculators over the frames of a trial.
package gait

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"go.viam.com/cgm/kinematics"
	"go.viam.com/cgm/logging"
	"go.viam.com/cgm/markers"
	"go.viam.com/cgm/referenceframe"
	sm "go.viam.com/cgm/spatialmath"
	"go.viam.com/cgm/utils"
)

// Subject is the per-subject state every frame reads: measurements, static offsets, the marker
// mapping and the joint center strategy. A Processor keeps its own copy, so changing a Subject
// after NewProcessor has no effect on it.
type Subject struct {
	Measurements kinematics.Measurements
	Offsets      kinematics.StaticOffsets
	Mapping      markers.Mapping
	// Finder defaults to spatialmath.DefaultJointCenterFinder.
	Finder sm.JointCenterFinder
}

// Option configures a Processor.
type Option func(*Processor)

// WithClock sets the clock used to time trials.
func WithClock(c clock.Clock) Option {
	return func(p *Processor) {
		p.clock = c
	}
}

// Processor computes frame results for one calibrated subject. It is safe for concurrent use.
type Processor struct {
	measurements kinematics.Measurements
	offsets      kinematics.StaticOffsets
	mapping      markers.Mapping
	finder       sm.JointCenterFinder
	feet         kinematics.FootCalculator

	logger    logging.Logger
	clock     clock.Clock
	processed atomic.Int64
}

// NewProcessor returns a processor for subject. A zero InterAsisDistance measurement is taken
// from the static offsets. Non-finite measurements are rejected with an InvalidInputError.
func NewProcessor(subject Subject, logger logging.Logger, opts ...Option) (*Processor, error) {
	m := subject.Measurements
	if m.InterAsisDistance == 0 {
		m.InterAsisDistance = subject.Offsets.InterAsisDistance
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid subject measurements")
	}
	finder := subject.Finder
	if finder == nil {
		finder = sm.DefaultJointCenterFinder
	}
	p := &Processor{
		measurements: m,
		offsets:      subject.Offsets,
		mapping:      subject.Mapping,
		finder:       finder,
		feet:         kinematics.NewFootCalculator().Calibrated(subject.Offsets),
		logger:       logger,
		clock:        clock.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Processed returns how many frames this processor has finished, failed ones included.
func (p *Processor) Processed() int64 {
	return p.processed.Load()
}

// Frame computes every segment axis and joint angle of one frame. Missing markers produce NaN
// axes; a marker with infinite coordinates fails the frame with an InvalidInputError.
func (p *Processor) Frame(index int, frame markers.Frame) FrameResult {
	if err := frame.Validate(); err != nil {
		return FrameResult{Index: index, Err: err}
	}
	m := p.measurements
	axes := make(map[Segment]referenceframe.Axis, len(Segments))

	pelvis := kinematics.PelvisAxis(
		frame.Point(markers.RASI), frame.Point(markers.LASI),
		frame.Point(markers.RPSI), frame.Point(markers.LPSI), frame.Point(markers.SACR),
	)
	hip, hipCenters := kinematics.HipAxis(pelvis, m)
	knee := kinematics.KneeAxis(
		frame.Point(markers.RTHI), frame.Point(markers.LTHI),
		frame.Point(markers.RKNE), frame.Point(markers.LKNE),
		hipCenters, m, p.finder,
	)
	ankle := kinematics.AnkleAxis(
		frame.Point(markers.RTIB), frame.Point(markers.LTIB),
		frame.Point(markers.RANK), frame.Point(markers.LANK),
		knee.Origins(), m, p.finder,
	)
	foot := p.feet.FootAxis(frame.Point(markers.RTOE), frame.Point(markers.LTOE), ankle)

	axes[Pelvis] = pelvis
	axes[Hip] = hip
	axes[RightKnee], axes[LeftKnee] = knee.Right, knee.Left
	axes[RightAnkle], axes[LeftAnkle] = ankle.Right, ankle.Left
	axes[RightFoot], axes[LeftFoot] = foot.Right, foot.Left

	axes[Head] = kinematics.HeadAxis(
		frame.Point(markers.LFHD), frame.Point(markers.RFHD),
		frame.Point(markers.LBHD), frame.Point(markers.RBHD),
		p.offsets.HeadOffset,
	)

	thorax := kinematics.ThoraxAxis(
		frame.Point(markers.CLAV), frame.Point(markers.C7),
		frame.Point(markers.STRN), frame.Point(markers.T10),
	)
	rsho, lsho := frame.Point(markers.RSHO), frame.Point(markers.LSHO)
	wand := kinematics.WandMarkers(rsho, lsho, thorax)
	shoulder := kinematics.ShoulderAxis(rsho, lsho, thorax, wand, m, p.finder)

	rightArm := kinematics.ArmMarkers{
		ELB: frame.Point(markers.RELB),
		WRA: frame.Point(markers.RWRA),
		WRB: frame.Point(markers.RWRB),
		FIN: frame.Point(markers.RFIN),
	}
	leftArm := kinematics.ArmMarkers{
		ELB: frame.Point(markers.LELB),
		WRA: frame.Point(markers.LWRA),
		WRB: frame.Point(markers.LWRB),
		FIN: frame.Point(markers.LFIN),
	}
	elbow, wrist := kinematics.ElbowWristAxis(rightArm, leftArm, shoulder.Origins(), m, p.finder)
	hand := kinematics.HandAxis(rightArm, leftArm, wrist.Origins(), m, p.finder)

	axes[Thorax] = thorax
	axes[RightClavicle], axes[LeftClavicle] = shoulder.Right, shoulder.Left
	axes[RightHumerus], axes[LeftHumerus] = elbow.Right, elbow.Left
	axes[RightRadius], axes[LeftRadius] = wrist.Right, wrist.Left
	axes[RightHand], axes[LeftHand] = hand.Right, hand.Left

	return FrameResult{Index: index, Axes: axes, Angles: angles(axes)}
}

func angles(axes map[Segment]referenceframe.Axis) map[Joint]kinematics.JointAngle {
	global := referenceframe.GlobalAxis()
	out := make(map[Joint]kinematics.JointAngle, len(jointPairs))
	for _, pair := range jointPairs {
		proximal := global
		if pair.proximal != "" {
			proximal = axes[pair.proximal]
		}
		out[pair.joint] = kinematics.JointAngles(proximal, axes[pair.distal])
	}
	return out
}

// trialFrame resolves and processes frame i of trial. A panic is recovered into the frame's error.
func (p *Processor) trialFrame(trial *markers.Trial, i int) (res FrameResult) {
	defer func() {
		if r := recover(); r != nil {
			res = FrameResult{Index: i, Err: errors.Errorf("panic processing frame: %v", r)}
		}
		p.processed.Inc()
	}()
	frame, err := trial.Frame(i, p.mapping)
	if err != nil {
		return FrameResult{Index: i, Err: err}
	}
	return p.Frame(i, frame)
}

// Trial processes every frame of trial on up to workers goroutines; workers <= 0 uses one per
// CPU. Each worker handles a contiguous range of frames and writes only its own results. A frame
// that fails is recorded in the result and does not stop the others. The returned error is only
// set when ctx is done before processing starts.
func (p *Processor) Trial(ctx context.Context, trial *markers.Trial, workers int) (*TrialResult, error) {
	n := trial.Len()
	results := make([]FrameResult, n)
	start := p.clock.Now()

	err := utils.GroupWorkParallel(
		ctx,
		n, workers,
		func(numGroups int) {
			p.logger.Debugw("processing trial", "frames", n, "workers", numGroups)
		},
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
				results[workNum] = p.trialFrame(trial, workNum)
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}

	out := &TrialResult{Frames: results}
	for i, res := range results {
		if res.Err == nil {
			continue
		}
		out.Failed = append(out.Failed, i)
		out.Err = multierr.Append(out.Err, errors.Wrapf(res.Err, "frame %d", i))
		p.logger.Warnw("frame failed", "frame", i, "error", res.Err)
	}
	p.logger.Infow("trial processed", "frames", n, "failed", len(out.Failed), "duration", p.clock.Since(start))
	return out, nil
}
