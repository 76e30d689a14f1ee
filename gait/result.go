package gait

import (
	"go.viam.com/cgm/kinematics"
	"go.viam.com/cgm/referenceframe"
)

// Segment names a segment axis in a FrameResult.
type Segment string

// The segment axes produced for every frame.
const (
	Pelvis        Segment = "Pelvis"
	Hip           Segment = "Hip"
	RightKnee     Segment = "RKnee"
	LeftKnee      Segment = "LKnee"
	RightAnkle    Segment = "RAnkle"
	LeftAnkle     Segment = "LAnkle"
	RightFoot     Segment = "RFoot"
	LeftFoot      Segment = "LFoot"
	Head          Segment = "Head"
	Thorax        Segment = "Thorax"
	RightClavicle Segment = "RClavicle"
	LeftClavicle  Segment = "LClavicle"
	RightHumerus  Segment = "RHumerus"
	LeftHumerus   Segment = "LHumerus"
	RightRadius   Segment = "RRadius"
	LeftRadius    Segment = "LRadius"
	RightHand     Segment = "RHand"
	LeftHand      Segment = "LHand"
)

// Segments lists every segment in processing order.
var Segments = []Segment{
	Pelvis, Hip, RightKnee, LeftKnee, RightAnkle, LeftAnkle, RightFoot, LeftFoot,
	Head, Thorax, RightClavicle, LeftClavicle, RightHumerus, LeftHumerus, RightRadius, LeftRadius, RightHand, LeftHand,
}

// Joint names a joint angle in a FrameResult.
type Joint string

// The joint angles produced for every frame. Pelvis, Head, Thorax and the foot progression
// angles are relative to the laboratory frame.
const (
	PelvisAngle        Joint = "Pelvis"
	RightHipAngle      Joint = "RHip"
	LeftHipAngle       Joint = "LHip"
	RightKneeAngle     Joint = "RKnee"
	LeftKneeAngle      Joint = "LKnee"
	RightAnkleAngle    Joint = "RAnkle"
	LeftAnkleAngle     Joint = "LAnkle"
	RightFootAngle     Joint = "RFootProgress"
	LeftFootAngle      Joint = "LFootProgress"
	HeadAngle          Joint = "Head"
	ThoraxAngle        Joint = "Thorax"
	NeckAngle          Joint = "Neck"
	SpineAngle         Joint = "Spine"
	RightShoulderAngle Joint = "RShoulder"
	LeftShoulderAngle  Joint = "LShoulder"
	RightElbowAngle    Joint = "RElbow"
	LeftElbowAngle     Joint = "LElbow"
	RightWristAngle    Joint = "RWrist"
	LeftWristAngle     Joint = "LWrist"
)

// jointPair is the proximal and distal segment of a joint. An empty proximal segment is the
// laboratory frame.
type jointPair struct {
	joint    Joint
	proximal Segment
	distal   Segment
}

var jointPairs = []jointPair{
	{PelvisAngle, "", Pelvis},
	{RightHipAngle, Pelvis, RightKnee},
	{LeftHipAngle, Pelvis, LeftKnee},
	{RightKneeAngle, RightKnee, RightAnkle},
	{LeftKneeAngle, LeftKnee, LeftAnkle},
	{RightAnkleAngle, RightAnkle, RightFoot},
	{LeftAnkleAngle, LeftAnkle, LeftFoot},
	{RightFootAngle, "", RightFoot},
	{LeftFootAngle, "", LeftFoot},
	{HeadAngle, "", Head},
	{ThoraxAngle, "", Thorax},
	{NeckAngle, Thorax, Head},
	{SpineAngle, Pelvis, Thorax},
	{RightShoulderAngle, Thorax, RightHumerus},
	{LeftShoulderAngle, Thorax, LeftHumerus},
	{RightElbowAngle, RightHumerus, RightRadius},
	{LeftElbowAngle, LeftHumerus, LeftRadius},
	{RightWristAngle, RightRadius, RightHand},
	{LeftWristAngle, LeftRadius, LeftHand},
}

// Joints lists every joint angle in output order.
var Joints = func() []Joint {
	out := make([]Joint, len(jointPairs))
	for i, p := range jointPairs {
		out[i] = p.joint
	}
	return out
}()

// FrameResult is the output of one frame. A failed frame has Err set and no axes or angles.
type FrameResult struct {
	Index  int                             `json:"index"`
	Axes   map[Segment]referenceframe.Axis `json:"axes,omitempty"`
	Angles map[Joint]kinematics.JointAngle `json:"angles,omitempty"`
	Err    error                           `json:"-"`
}

// Failed reports whether the frame could not be processed.
func (r FrameResult) Failed() bool {
	return r.Err != nil
}

// TrialResult holds one FrameResult per frame of a trial, in frame order.
type TrialResult struct {
	Frames []FrameResult
	// Failed lists the indices of failed frames in increasing order.
	Failed []int
	// Err combines the errors of every failed frame.
	Err error
}
