// Package testutils holds fixtures shared by the package tests.
package testutils

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/cgm/kinematics"
	"go.viam.com/cgm/markers"
)

// StaticHeadPitch is the head offset, in radians, built into SubjectMarkers.
const StaticHeadPitch = 0.2

// SubjectMeasurements are the measurements of the subject SubjectMarkers was captured from. The
// interASIS distance is left to calibration.
func SubjectMeasurements() kinematics.Measurements {
	return kinematics.Measurements{
		Bodymass:             72,
		Height:               1730,
		LeftLegLength:        940,
		RightLegLength:       940,
		LeftAsisToTrocanter:  72.512,
		RightAsisToTrocanter: 72.512,
		LeftKneeWidth:        105,
		RightKneeWidth:       105,
		LeftAnkleWidth:       70,
		RightAnkleWidth:      70,
		LeftShoulderOffset:   40,
		RightShoulderOffset:  40,
		LeftElbowWidth:       74,
		RightElbowWidth:      74,
		LeftWristWidth:       55,
		RightWristWidth:      55,
		LeftHandThickness:    34,
		RightHandThickness:   34,
	}
}

// SubjectMarkers returns one frame of a subject standing in the static pose, facing +Y, with every
// marker role present. The head is pitched forward by StaticHeadPitch.
func SubjectMarkers() map[string]r3.Vector {
	frame := map[string]r3.Vector{
		markers.RASI: {X: 357.90066528, Y: 377.69210815, Z: 1034.97253418},
		markers.LASI: {X: 145.31594849, Y: 405.79052734, Z: 1030.81445312},
		markers.RPSI: {X: 274.00466919, Y: 205.64402771, Z: 1051.76452637},
		markers.LPSI: {X: 189.15231323, Y: 214.86122131, Z: 1052.73486328},
		markers.SACR: {X: 231.57849121, Y: 210.25262451, Z: 1052.24969482},
		markers.RTHI: {X: 426.50338745, Y: 262.65310669, Z: 673.66247559},
		markers.LTHI: {X: 51.93867874, Y: 320.01849365, Z: 723.03186035},
		markers.RKNE: {X: 416.98687744, Y: 266.22558594, Z: 524.04089355},
		markers.LKNE: {X: 84.62355804, Y: 286.69122314, Z: 529.39819336},
		markers.RTIB: {X: 433.97961426, Y: 211.93368530, Z: 273.30593872},
		markers.LTIB: {X: 50.04016113, Y: 235.90718079, Z: 364.32226562},
		markers.RANK: {X: 422.77005005, Y: 217.74053955, Z: 92.86039734},
		markers.LANK: {X: 58.57380676, Y: 208.54806519, Z: 86.16953278},
		markers.RTOE: {X: 442.81997681, Y: 381.62280273, Z: 42.66047668},
		markers.LTOE: {X: 39.43652725, Y: 382.44522095, Z: 41.78911591},
		markers.RHEE: {X: 374.01257324, Y: 181.57929993, Z: 49.50960922},
		markers.LHEE: {X: 105.30126953, Y: 180.2130127, Z: 47.15660858},

		markers.CLAV: {X: 256.1, Y: 364.1, Z: 1459.7},
		markers.C7:   {X: 256.3, Y: 211.3, Z: 1541.4},
		markers.STRN: {X: 260.1, Y: 350.6, Z: 1273.9},
		markers.T10:  {X: 249.4, Y: 187.4, Z: 1296.0},
		markers.RSHO: {X: 428.9, Y: 270.6, Z: 1500.7},
		markers.LSHO: {X: 68.2, Y: 269.0, Z: 1510.1},
		markers.RELB: {X: 658.9, Y: 326.1, Z: 1285.3},
		markers.LELB: {X: -156.3, Y: 335.3, Z: 1287.9},
		markers.RWRA: {X: 776.5, Y: 495.7, Z: 1108.4},
		markers.RWRB: {X: 830.9, Y: 436.8, Z: 1119.1},
		markers.LWRA: {X: -263.3, Y: 514.1, Z: 1099.9},
		markers.LWRB: {X: -322.9, Y: 442.1, Z: 1099.6},
		markers.RFIN: {X: 863.7, Y: 524.4, Z: 1079.2},
		markers.LFIN: {X: -326.6, Y: 525.9, Z: 1063.0},
	}

	// head markers on a 100x140mm rectangle, X forward and Y to the left, pitched about Y
	s, c := math.Sincos(StaticHeadPitch)
	center := r3.Vector{X: 216, Y: 480, Z: 1670}
	forward := r3.Vector{Y: c, Z: s}.Mul(50)
	left := r3.Vector{X: -1}.Mul(70)
	frame[markers.LFHD] = center.Add(forward).Add(left)
	frame[markers.RFHD] = center.Add(forward).Sub(left)
	frame[markers.LBHD] = center.Sub(forward).Add(left)
	frame[markers.RBHD] = center.Sub(forward).Sub(left)
	return frame
}

// Without returns a copy of frame with roles removed.
func Without(frame map[string]r3.Vector, roles ...string) map[string]r3.Vector {
	out := make(map[string]r3.Vector, len(frame))
	for k, v := range frame {
		out[k] = v
	}
	for _, role := range roles {
		delete(out, role)
	}
	return out
}

// Translated returns a copy of frame with every marker moved by offset.
func Translated(frame map[string]r3.Vector, offset r3.Vector) map[string]r3.Vector {
	out := make(map[string]r3.Vector, len(frame))
	for k, v := range frame {
		out[k] = v.Add(offset)
	}
	return out
}

// NewTrial builds a trial labeled with every marker role and appends frames to it.
func NewTrial(tb testing.TB, frames ...map[string]r3.Vector) *markers.Trial {
	tb.Helper()
	trial, err := markers.NewTrial(markers.Canonical, nil)
	test.That(tb, err, test.ShouldBeNil)
	for _, frame := range frames {
		test.That(tb, trial.Append(frame), test.ShouldBeNil)
	}
	return trial
}
