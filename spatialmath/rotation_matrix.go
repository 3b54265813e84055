package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 rotation matrix in row major order. A proper
// rotation is orthonormal with determinant +1; the conversions in this
// package assume that property and do not re-orthonormalize, see
// OrthonormalityError for an explicit probe.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a rotation matrix from a slice of exactly 9
// values in row major order.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	var matArr [9]float64
	copy(matArr[:], m)
	return &RotationMatrix{matArr}, nil
}

// At returns the value of the matrix at the given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a vector with the values of the specified row.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the a vector with the values of the specified column.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[3+col], Z: rm.mat[6+col]}
}

// Mul returns the matrix product rm * other.
func (rm *RotationMatrix) Mul(other *RotationMatrix) *RotationMatrix {
	var out [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[3*row+col] = rm.At(row, 0)*other.At(0, col) +
				rm.At(row, 1)*other.At(1, col) +
				rm.At(row, 2)*other.At(2, col)
		}
	}
	return &RotationMatrix{out}
}

// MulVec returns the vector rotated by the matrix.
func (rm *RotationMatrix) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.Row(0).Dot(v),
		Y: rm.Row(1).Dot(v),
		Z: rm.Row(2).Dot(v),
	}
}

// Transpose returns the transpose, which for a proper rotation is also the
// inverse.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	m := rm.mat
	return &RotationMatrix{[9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// Dense returns a copy of the matrix as a gonum dense matrix for use with
// larger numeric pipelines.
func (rm *RotationMatrix) Dense() *mat.Dense {
	return mat.NewDense(3, 3, append([]float64(nil), rm.mat[:]...))
}

// Det returns the determinant of the matrix.
func (rm *RotationMatrix) Det() float64 {
	return mat.Det(rm.Dense())
}

// OrthonormalityError measures how far the matrix is from a proper rotation.
// It returns the largest absolute deviation of rm * rmᵀ from the identity
// plus the deviation of the determinant from +1; zero for an exact rotation.
func (rm *RotationMatrix) OrthonormalityError() float64 {
	d := rm.Dense()
	var rrt mat.Dense
	rrt.Mul(d, d.T())
	maxDev := 0.0
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := 0.0
			if row == col {
				want = 1
			}
			if dev := math.Abs(rrt.At(row, col) - want); dev > maxDev {
				maxDev = dev
			}
		}
	}
	return maxDev + math.Abs(mat.Det(d)-1)
}

// Q2R converts a unit quaternion to a rotation matrix.
// See: https://en.wikipedia.org/wiki/Rotation_matrix#Quaternion
func Q2R(q quat.Number) *RotationMatrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return &RotationMatrix{[9]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w),
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w),
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y),
	}}
}

// R2Q converts a rotation matrix to a unit quaternion using Shepperd's
// method, branching on the largest diagonal term for numerical stability.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/matrixToQuaternion/
func R2Q(rm *RotationMatrix) quat.Number {
	tr := rm.At(0, 0) + rm.At(1, 1) + rm.At(2, 2)
	var w, x, y, z float64
	switch {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1)
		w = 0.25 * s
		x = (rm.At(2, 1) - rm.At(1, 2)) / s
		y = (rm.At(0, 2) - rm.At(2, 0)) / s
		z = (rm.At(1, 0) - rm.At(0, 1)) / s
	case rm.At(0, 0) > rm.At(1, 1) && rm.At(0, 0) > rm.At(2, 2):
		s := 2 * math.Sqrt(1 + rm.At(0, 0) - rm.At(1, 1) - rm.At(2, 2))
		w = (rm.At(2, 1) - rm.At(1, 2)) / s
		x = 0.25 * s
		y = (rm.At(0, 1) + rm.At(1, 0)) / s
		z = (rm.At(0, 2) + rm.At(2, 0)) / s
	case rm.At(1, 1) > rm.At(2, 2):
		s := 2 * math.Sqrt(1 + rm.At(1, 1) - rm.At(0, 0) - rm.At(2, 2))
		w = (rm.At(0, 2) - rm.At(2, 0)) / s
		x = (rm.At(0, 1) + rm.At(1, 0)) / s
		y = 0.25 * s
		z = (rm.At(1, 2) + rm.At(2, 1)) / s
	default:
		s := 2 * math.Sqrt(1 + rm.At(2, 2) - rm.At(0, 0) - rm.At(1, 1))
		w = (rm.At(1, 0) - rm.At(0, 1)) / s
		x = (rm.At(0, 2) + rm.At(2, 0)) / s
		y = (rm.At(1, 2) + rm.At(2, 1)) / s
		z = 0.25 * s
	}
	return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// Ax2R builds the rotation matrix for a rotation by theta about the x axis.
func Ax2R(theta float64) *RotationMatrix {
	s, c := math.Sincos(theta)
	return &RotationMatrix{[9]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

// Ay2R builds the rotation matrix for a rotation by theta about the y axis.
func Ay2R(theta float64) *RotationMatrix {
	s, c := math.Sincos(theta)
	return &RotationMatrix{[9]float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

// Az2R builds the rotation matrix for a rotation by theta about the z axis.
func Az2R(theta float64) *RotationMatrix {
	s, c := math.Sincos(theta)
	return &RotationMatrix{[9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}
