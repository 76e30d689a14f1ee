// Package referenceframe defines the segment coordinate systems produced by the axis calculators.
package referenceframe

import (
	"encoding/json"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/cgm/spatialmath"
)

// Axis is a segment coordinate system. X, Y and Z are absolute points, each one unit from Origin
// along the corresponding axis direction.
type Axis struct {
	Origin r3.Vector
	X      r3.Vector
	Y      r3.Vector
	Z      r3.Vector
}

// NewAxis places the direction vectors x, y and z at origin.
func NewAxis(origin, x, y, z r3.Vector) Axis {
	return Axis{Origin: origin, X: origin.Add(x), Y: origin.Add(y), Z: origin.Add(z)}
}

// NaNAxis returns an axis at origin whose directions are undefined.
func NaNAxis(origin r3.Vector) Axis {
	nan := spatialmath.NaNVector()
	return Axis{Origin: origin, X: nan, Y: nan, Z: nan}
}

// GlobalAxis is the laboratory frame.
func GlobalAxis() Axis {
	return NewAxis(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1}, r3.Vector{Z: 1})
}

// Directions returns the axis directions relative to the origin.
func (a Axis) Directions() (x, y, z r3.Vector) {
	return a.X.Sub(a.Origin), a.Y.Sub(a.Origin), a.Z.Sub(a.Origin)
}

// DirectionMatrix returns the directions as the rows of a 3x3 matrix.
func (a Axis) DirectionMatrix() *mat.Dense {
	x, y, z := a.Directions()
	return spatialmath.RowsToMatrix(x, y, z)
}

// Translate moves the axis to origin keeping its directions.
func (a Axis) Translate(origin r3.Vector) Axis {
	x, y, z := a.Directions()
	return NewAxis(origin, x, y, z)
}

// Rotate applies rot to the direction rows, i.e. the new directions are the rows of rot·D.
func (a Axis) Rotate(rot mat.Matrix) Axis {
	x, y, z := a.Directions()
	rows := spatialmath.RotateRows(rot, x, y, z)
	return NewAxis(a.Origin, rows[0], rows[1], rows[2])
}

// Rows returns origin, x, y and z as a 4x3 structure.
func (a Axis) Rows() [4]r3.Vector {
	return [4]r3.Vector{a.Origin, a.X, a.Y, a.Z}
}

// HasNaN reports whether any point of the axis is NaN.
func (a Axis) HasNaN() bool {
	for _, r := range a.Rows() {
		if spatialmath.IsNaNVector(r) {
			return true
		}
	}
	return false
}

// IsOrthonormal reports whether the directions are unit length and mutually orthogonal within tol.
func (a Axis) IsOrthonormal(tol float64) bool {
	x, y, z := a.Directions()
	for _, d := range []r3.Vector{x, y, z} {
		if math.Abs(d.Norm()-1) > tol {
			return false
		}
	}
	return math.Abs(x.Dot(y)) <= tol && math.Abs(y.Dot(z)) <= tol && math.Abs(x.Dot(z)) <= tol
}

// MarshalJSON encodes the axis as [[ox,oy,oz],[xx,xy,xz],[yx,yy,yz],[zx,zy,zz]]. NaN components
// are encoded as null.
func (a Axis) MarshalJSON() ([]byte, error) {
	rows := a.Rows()
	return json.Marshal(encodeRows(rows[:]))
}

// PairedAxis holds the right and left axes of a bilateral segment.
type PairedAxis struct {
	Right Axis
	Left  Axis
}

// Rows returns the right origin and axes followed by the left ones as an 8x3 structure.
func (p PairedAxis) Rows() [8]r3.Vector {
	r, l := p.Right.Rows(), p.Left.Rows()
	return [8]r3.Vector{r[0], r[1], r[2], r[3], l[0], l[1], l[2], l[3]}
}

// Origins returns both joint centers.
func (p PairedAxis) Origins() PointPair {
	return PointPair{Right: p.Right.Origin, Left: p.Left.Origin}
}

// PointPair is a right and left point, typically joint centers.
type PointPair struct {
	Right r3.Vector
	Left  r3.Vector
}

func encodeRows(rows []r3.Vector) [][3]*float64 {
	out := make([][3]*float64, len(rows))
	for i, r := range rows {
		for j, c := range [3]float64{r.X, r.Y, r.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				continue
			}
			out[i][j] = &c
		}
	}
	return out
}
