package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/cgm/utils"
)

// RotationMatrix builds the rotation that turns by x degrees about X, then y degrees about the
// resulting Y, then z degrees about the resulting Z. The result is Rx(x)·Ry(y)·Rz(z).
func RotationMatrix(x, y, z float64) *mat.Dense {
	rx := rotX(utils.DegToRad(x))
	ry := rotY(utils.DegToRad(y))
	rz := rotZ(utils.DegToRad(z))

	var xy mat.Dense
	xy.Mul(rx, ry)
	out := mat.NewDense(3, 3, nil)
	out.Mul(&xy, rz)
	return out
}

func rotX(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

func rotY(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

func rotZ(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// RowsToMatrix stacks the given vectors as the rows of a matrix.
func RowsToMatrix(rows ...r3.Vector) *mat.Dense {
	m := mat.NewDense(len(rows), 3, nil)
	for i, r := range rows {
		m.SetRow(i, VectorToSlice(r))
	}
	return m
}

// MatrixRow returns row i of a matrix with three columns as a vector.
func MatrixRow(m mat.Matrix, i int) r3.Vector {
	return r3.Vector{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
}

// RotateRows applies rot to each of the given row vectors, i.e. returns the rows of rot·[rows].
func RotateRows(rot mat.Matrix, rows ...r3.Vector) []r3.Vector {
	var out mat.Dense
	out.Mul(rot, RowsToMatrix(rows...))
	result := make([]r3.Vector, len(rows))
	for i := range rows {
		result[i] = MatrixRow(&out, i)
	}
	return result
}
