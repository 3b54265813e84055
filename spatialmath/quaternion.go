package spatialmath

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// errZeroLengthQuaternion is the domain error for normalizing a quaternion
// with no magnitude.
var errZeroLengthQuaternion = errors.New("cannot normalize quaternion with zero length")

// QuatOrder declares the component layout of a raw quaternion array.
type QuatOrder int

// The two component layouts in common use. Conversions in this package
// produce and consume OrderWXYZ unless explicitly reordered via Q2Q.
const (
	OrderWXYZ QuatOrder = iota
	OrderXYZW
)

// QuatOp is a set of canonicalization operations for Q2Q. Operations always
// apply in the fixed order normalize, halfspace, change order, regardless of
// how the set is assembled.
type QuatOp uint

// Supported Q2Q operations.
const (
	QuatOpNormalize QuatOp = 1 << iota
	QuatOpHalfspace
	QuatOpChangeOrder
)

// Normalize scales a quaternion to unit length. A zero-length quaternion is
// invalid input and returns an error rather than an undefined result.
func Normalize(q quat.Number) (quat.Number, error) {
	n := quat.Abs(q)
	if n < Epsilon {
		return quat.Number{}, errZeroLengthQuaternion
	}
	return quat.Scale(1/n, q), nil
}

// Halfspace returns the member of the {q, -q} double-cover pair whose scalar
// component is non-negative. Both members represent the same rotation.
func Halfspace(q quat.Number) quat.Number {
	if q.Real < 0 {
		return Flip(q)
	}
	return q
}

// Flip multiplies a quaternion by -1, returning a quaternion representing
// the same orientation in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// RotationBetween returns the rotation taking q1 to q2.
func RotationBetween(q1, q2 quat.Number) quat.Number {
	return quat.Mul(q2, quat.Conj(q1))
}

// QuaternionAlmostEqual checks whether two quaternions represent nearly the
// same rotation, accounting for the double cover.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	diff := quat.Sub(a, b)
	sum := quat.Add(a, b)
	return quat.Abs(diff) < tol || quat.Abs(sum) < tol
}

// Q2Q canonicalizes a raw quaternion array. The declared order describes the
// input layout; QuatOpChangeOrder permutes the output to the other layout,
// while the remaining operations leave the layout unchanged.
func Q2Q(q [4]float64, ops QuatOp, order QuatOrder) ([4]float64, error) {
	result := q
	if ops&QuatOpNormalize != 0 {
		norm := math.Sqrt(result[0]*result[0] + result[1]*result[1] +
			result[2]*result[2] + result[3]*result[3])
		if norm < Epsilon {
			return [4]float64{}, errZeroLengthQuaternion
		}
		for i := range result {
			result[i] /= norm
		}
	}
	if ops&QuatOpHalfspace != 0 {
		wIdx := 0
		if order == OrderXYZW {
			wIdx = 3
		}
		if result[wIdx] < 0 {
			for i := range result {
				result[i] = -result[i]
			}
		}
	}
	if ops&QuatOpChangeOrder != 0 {
		if order == OrderWXYZ {
			result = [4]float64{result[1], result[2], result[3], result[0]}
		} else {
			result = [4]float64{result[3], result[0], result[1], result[2]}
		}
	}
	return result, nil
}
