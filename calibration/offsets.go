package calibration

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/cgm/referenceframe"
)

// globalHeadAxis is the laboratory frame in which the head is expected to face during the static trial.
var globalHeadAxis = mat.NewDense(3, 3, []float64{
	0, 1, 0,
	-1, 0, 0,
	0, 0, 1,
})

// relativeRotation returns distal·proximal⁻¹ for two 3x3 direction matrices.
func relativeRotation(proximal, distal mat.Matrix) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(proximal); err != nil {
		return nil, errors.Wrap(err, "cannot invert axis")
	}
	var out mat.Dense
	out.Mul(distal, &inv)
	return &out, nil
}

// FootOffsetAngles returns the rotation offset alpha and plantar flexion offset beta, in radians,
// that take the uncorrected foot directions to the reference foot directions.
func FootOffsetAngles(uncorrected, reference mat.Matrix) (alpha, beta float64, err error) {
	m, err := relativeRotation(uncorrected, reference)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	alpha = math.Atan(m.At(2, 1) / math.Hypot(m.At(2, 0), m.At(2, 2)))
	beta = math.Atan(-m.At(2, 0) / m.At(2, 2))
	return alpha, beta, nil
}

// HeadOffsetAngle returns the pitch of the head directions relative to global, in radians.
func HeadOffsetAngle(global, head mat.Matrix) (float64, error) {
	m, err := relativeRotation(global, head)
	if err != nil {
		return math.NaN(), err
	}
	return math.Atan(m.At(0, 2) / m.At(2, 2)), nil
}

// footOffsets measures both feet of one frame.
func footOffsets(uncorrected, reference referenceframe.PairedAxis) (rightAlpha, rightBeta, leftAlpha, leftBeta float64) {
	side := func(u, r referenceframe.Axis) (float64, float64) {
		if u.HasNaN() || r.HasNaN() {
			return math.NaN(), math.NaN()
		}
		a, b, err := FootOffsetAngles(u.DirectionMatrix(), r.DirectionMatrix())
		if err != nil {
			return math.NaN(), math.NaN()
		}
		return a, b
	}
	rightAlpha, rightBeta = side(uncorrected.Right, reference.Right)
	leftAlpha, leftBeta = side(uncorrected.Left, reference.Left)
	return rightAlpha, rightBeta, leftAlpha, leftBeta
}
