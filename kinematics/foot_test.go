package kinematics

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/cgm/referenceframe"
)

var twistedAnkle = referenceframe.PairedAxis{
	Right: axisFromRows(
		r3.Vector{X: 393.76025063, Y: 247.67679001, Z: 87.73668325},
		r3.Vector{X: 394.5375749, Y: 248.30578178, Z: 87.72500719},
		r3.Vector{X: 393.13490978, Y: 248.44731018, Z: 87.61320254},
		r3.Vector{X: 393.69157891, Y: 247.78007607, Z: 88.72896152},
	),
	Left: axisFromRows(
		r3.Vector{X: 98.74901958, Y: 219.46930155, Z: 80.63068168},
		r3.Vector{X: 98.52538756, Y: 220.43783578, Z: 80.52145639},
		r3.Vector{X: 97.77943411, Y: 219.25967399, Z: 80.75701581},
		r3.Vector{X: 98.84848188, Y: 219.60345715, Z: 81.61663783},
	),
}

var (
	rtoe = r3.Vector{X: 442.81997681, Y: 381.62280273, Z: 42.66047668}
	ltoe = r3.Vector{X: 39.43652725, Y: 382.44522095, Z: 41.78911591}
)

func TestFootCalculatorStates(t *testing.T) {
	var zero FootCalculator
	test.That(t, zero.Mode(), test.ShouldEqual, FootUncorrected)
	test.That(t, NewFootCalculator().Mode(), test.ShouldEqual, FootUncorrected)
	test.That(t, NewFootCalculator().Mode().String(), test.ShouldEqual, "uncorrected")

	offsets := StaticOffsets{RightStaticRotOff: 0.1, LeftStaticPlantFlex: -0.2}
	fc := NewFootCalculator().Calibrated(offsets)
	test.That(t, fc.Mode(), test.ShouldEqual, FootCorrected)
	test.That(t, fc.Mode().String(), test.ShouldEqual, "corrected")
	test.That(t, fc.Offsets(), test.ShouldResemble, offsets)

	// recalibrating replaces the offsets
	again := fc.Calibrated(StaticOffsets{LeftStaticRotOff: 0.3})
	test.That(t, again.Offsets(), test.ShouldResemble, StaticOffsets{LeftStaticRotOff: 0.3})
	test.That(t, fc.Offsets(), test.ShouldResemble, offsets)
	test.That(t, FootMode(7).String(), test.ShouldEqual, "unknown")
}

func TestFootAxisUncorrected(t *testing.T) {
	got := NewFootCalculator().FootAxis(rtoe, ltoe, twistedAnkle)
	axisAlmostEqual(t, got.Right, axisFromRows(
		r3.Vector{X: 442.81997681, Y: 381.62280273, Z: 42.66047668},
		r3.Vector{X: 442.96255183, Y: 381.89119058, Z: 43.61317827},
		r3.Vector{X: 441.88609855, Y: 381.97818981, Z: 42.70011778},
		r3.Vector{X: 442.49203816, Y: 380.72744359, Z: 42.96178758},
	), 1e-7)
	axisAlmostEqual(t, got.Left, axisFromRows(
		r3.Vector{X: 39.43652725, Y: 382.44522095, Z: 41.78911591},
		r3.Vector{X: 39.50694143, Y: 382.70065597, Z: 42.75337459},
		r3.Vector{X: 38.4964897, Y: 382.13881388, Z: 41.93892952},
		r3.Vector{X: 39.77025057, Y: 381.52823259, Z: 42.00765902},
	), 1e-7)

	// zero offsets leave the corrected axis where the uncorrected one is
	corrected := NewFootCalculator().Calibrated(StaticOffsets{}).FootAxis(rtoe, ltoe, twistedAnkle)
	axisAlmostEqual(t, corrected.Right, got.Right, 1e-9)
	axisAlmostEqual(t, corrected.Left, got.Left, 1e-9)
}

func TestFootAxisCorrected(t *testing.T) {
	plain := NewFootCalculator().FootAxis(rtoe, ltoe, twistedAnkle)
	px, py, pz := plain.Right.Directions()
	lx, ly, _ := plain.Left.Directions()

	t.Run("plantar flexion turns about Y", func(t *testing.T) {
		fc := NewFootCalculator().Calibrated(StaticOffsets{RightStaticPlantFlex: 0.1, LeftStaticPlantFlex: -0.25})
		got := fc.FootAxis(rtoe, ltoe, twistedAnkle)
		x, y, _ := got.Right.Directions()
		vectorAlmostEqual(t, y, py, 1e-9)
		test.That(t, x.Dot(px), test.ShouldAlmostEqual, math.Cos(0.1), 1e-9)
		test.That(t, x.Dot(pz), test.ShouldAlmostEqual, math.Sin(0.1), 1e-9)

		x, y, _ = got.Left.Directions()
		vectorAlmostEqual(t, y, ly, 1e-9)
		test.That(t, x.Dot(lx), test.ShouldAlmostEqual, math.Cos(0.25), 1e-9)
		test.That(t, got.Right.Origin, test.ShouldResemble, rtoe)
		test.That(t, got.Right.IsOrthonormal(1e-9), test.ShouldBeTrue)
		test.That(t, got.Left.IsOrthonormal(1e-9), test.ShouldBeTrue)
	})

	t.Run("rotation offset turns about X", func(t *testing.T) {
		fc := NewFootCalculator().Calibrated(StaticOffsets{RightStaticRotOff: 0.2, LeftStaticRotOff: 0.2})
		got := fc.FootAxis(rtoe, ltoe, twistedAnkle)
		x, y, _ := got.Right.Directions()
		vectorAlmostEqual(t, x, px, 1e-9)
		test.That(t, y.Dot(py), test.ShouldAlmostEqual, math.Cos(0.2), 1e-9)
		// the right offset is stored negated, so the two sides turn the opposite way
		test.That(t, y.Dot(pz), test.ShouldAlmostEqual, math.Sin(0.2), 1e-9)

		_, ly2, lz2 := got.Left.Directions()
		_, _, lz := plain.Left.Directions()
		test.That(t, ly2.Dot(lz), test.ShouldAlmostEqual, -math.Sin(0.2), 1e-9)
		test.That(t, lz2.Dot(ly), test.ShouldAlmostEqual, math.Sin(0.2), 1e-9)
	})
}

func TestFootReferenceAxis(t *testing.T) {
	rhee := r3.Vector{X: 374.01257324, Y: 181.57929993, Z: 49.50960922}
	lhee := r3.Vector{X: 105.30126953, Y: 180.2130127, Z: 47.15660858}

	sloped := FootReferenceAxis(rtoe, ltoe, rhee, lhee, twistedAnkle, false)
	_, _, z := sloped.Right.Directions()
	vectorAlmostEqual(t, z, rhee.Sub(rtoe).Normalize(), 1e-10)
	test.That(t, sloped.Right.Origin, test.ShouldResemble, rtoe)
	test.That(t, sloped.Left.Origin, test.ShouldResemble, ltoe)

	flat := FootReferenceAxis(rtoe, ltoe, rhee, lhee, twistedAnkle, true)
	for _, axis := range []referenceframe.Axis{flat.Right, flat.Left} {
		_, _, z := axis.Directions()
		test.That(t, z.Z, test.ShouldAlmostEqual, 0, 1e-10)
		test.That(t, axis.IsOrthonormal(1e-9), test.ShouldBeTrue)
	}
}
