package kinematics

import (
	"github.com/golang/geo/r3"

	"go.viam.com/cgm/referenceframe"
	sm "go.viam.com/cgm/spatialmath"
	"go.viam.com/cgm/utils"
)

// FootMode is the state of a FootCalculator.
type FootMode int

const (
	// FootUncorrected builds the toe → ankle foot axis used while calibrating.
	FootUncorrected FootMode = iota
	// FootCorrected rotates the uncorrected axis by the static foot offsets.
	FootCorrected
)

func (mode FootMode) String() string {
	switch mode {
	case FootUncorrected:
		return "uncorrected"
	case FootCorrected:
		return "corrected"
	}
	return "unknown"
}

// FootCalculator builds foot axes. A new calculator is uncorrected; Calibrated returns the
// corrected calculator for a set of static offsets. The zero value is uncorrected.
type FootCalculator struct {
	mode    FootMode
	offsets StaticOffsets
}

// NewFootCalculator returns an uncorrected foot calculator.
func NewFootCalculator() FootCalculator {
	return FootCalculator{mode: FootUncorrected}
}

// Calibrated returns a corrected calculator that applies offsets.
func (fc FootCalculator) Calibrated(offsets StaticOffsets) FootCalculator {
	return FootCalculator{mode: FootCorrected, offsets: offsets}
}

// Mode returns the calculator state.
func (fc FootCalculator) Mode() FootMode {
	return fc.mode
}

// Offsets returns the static offsets applied in corrected mode.
func (fc FootCalculator) Offsets() StaticOffsets {
	return fc.offsets
}

// FootAxis builds both foot axes at the toe markers. The uncorrected Z points from the toe to the
// ankle joint center and Y follows the ankle flexion axis. In corrected mode each side is then
// rotated by RotationMatrix(rotation offset, plantar flexion offset, 0); the right rotation offset
// is stored with the opposite sign.
func (fc FootCalculator) FootAxis(rtoe, ltoe r3.Vector, ankle referenceframe.PairedAxis) referenceframe.PairedAxis {
	right := toeAxis(rtoe, ankle.Right.Origin, ankle.Right)
	left := toeAxis(ltoe, ankle.Left.Origin, ankle.Left)
	if fc.mode == FootUncorrected {
		return referenceframe.PairedAxis{Right: right, Left: left}
	}
	o := fc.offsets
	return referenceframe.PairedAxis{
		Right: right.Rotate(sm.RotationMatrix(utils.RadToDeg(-o.RightStaticRotOff), utils.RadToDeg(o.RightStaticPlantFlex), 0)),
		Left:  left.Rotate(sm.RotationMatrix(utils.RadToDeg(o.LeftStaticRotOff), utils.RadToDeg(o.LeftStaticPlantFlex), 0)),
	}
}

// FootReferenceAxis builds the anatomical foot axes used to derive the static offsets: Z points
// from the toe to the heel. With footFlat the heel is moved to the height of the toe so the
// reference foot lies parallel to the floor.
func FootReferenceAxis(rtoe, ltoe, rhee, lhee r3.Vector, ankle referenceframe.PairedAxis, footFlat bool) referenceframe.PairedAxis {
	if footFlat {
		rhee.Z = rtoe.Z
		lhee.Z = ltoe.Z
	}
	return referenceframe.PairedAxis{
		Right: toeAxis(rtoe, rhee, ankle.Right),
		Left:  toeAxis(ltoe, lhee, ankle.Left),
	}
}

// toeAxis builds a foot axis at toe whose Z points at target and whose Y follows the ankle Y axis.
func toeAxis(toe, target r3.Vector, ankle referenceframe.Axis) referenceframe.Axis {
	z := sm.Direction(target.Sub(toe))
	_, ankleY, _ := ankle.Directions()
	yflex := sm.Direction(ankleY)
	x := sm.CrossDirection(yflex, z)
	y := sm.Direction(z.Cross(x))
	return referenceframe.NewAxis(toe, x, y, z)
}
