package kinematics

import (
	"github.com/golang/geo/r3"

	"go.viam.com/cgm/referenceframe"
	sm "go.viam.com/cgm/spatialmath"
	"go.viam.com/cgm/utils"
)

// HeadAxis builds the head axis from the four head markers at the midpoint of the front markers,
// then pitches it about its own Y axis by -headOffset radians to remove the static head offset.
func HeadAxis(lfhd, rfhd, lbhd, rbhd r3.Vector, headOffset float64) referenceframe.Axis {
	front := sm.Midpoint(lfhd, rfhd)
	back := sm.Midpoint(lbhd, rbhd)
	left := sm.Midpoint(lfhd, lbhd)
	right := sm.Midpoint(rfhd, rbhd)

	x := sm.Direction(front.Sub(back))
	y := sm.Direction(left.Sub(right))
	z := sm.CrossDirection(x, y)
	y = sm.Direction(z.Cross(x))
	x = sm.Direction(y.Cross(z))

	axis := referenceframe.NewAxis(front, x, y, z)
	return axis.Rotate(sm.RotationMatrix(0, utils.RadToDeg(-headOffset), 0))
}

// ThoraxAxis builds the thorax axis from the clavicle, sternum and spine markers. The origin sits
// one marker radius behind CLAV along X.
func ThoraxAxis(clav, c7, strn, t10 r3.Vector) referenceframe.Axis {
	upper := sm.Midpoint(clav, c7)
	lower := sm.Midpoint(strn, t10)
	front := sm.Midpoint(clav, strn)
	back := sm.Midpoint(t10, c7)

	z := sm.Direction(lower.Sub(upper))
	x := sm.Direction(front.Sub(back))
	y := sm.CrossDirection(z, x)
	x = sm.Direction(y.Cross(z))
	z = sm.Direction(x.Cross(y))

	return referenceframe.NewAxis(clav.Sub(x.Mul(MarkerRadius)), x, y, z)
}
