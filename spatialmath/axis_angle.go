// Package spatialmath defines conversions between the 3D rigid-body
// orientation and pose representations used in motion-capture pipelines:
// axis-angle vectors, Euler angles, unit quaternions, rotation matrices and
// homogeneous transforms.
//
// An axis-angle is an r3.Vector whose direction is the rotation axis and
// whose magnitude is the rotation angle in radians. The same orientation is
// represented by (axis, angle) and (-axis, 2π-angle); A2A picks the member
// with angle in [0, π].
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// A2A canonicalizes an axis-angle vector so that its magnitude lies in
// [0, π]. Magnitudes above 2π are first reduced modulo 2π; this is lossy, so
// a warning is emitted on the package logger.
func A2A(aa r3.Vector) r3.Vector {
	angle := aa.Norm()
	if angle <= Epsilon {
		return aa
	}
	if angle > 2*math.Pi {
		reduced := math.Mod(angle, 2*math.Pi)
		logger.Warnw("axis-angle magnitude is larger than 2π, reducing", "angle", angle)
		aa = aa.Mul(reduced / angle)
		angle = reduced
	}
	if angle > math.Pi {
		return aa.Mul(-(2*math.Pi - angle) / angle)
	}
	return aa
}

// A2Q converts an axis-angle vector to a unit quaternion via the exponential
// map. The zero vector maps to the identity quaternion.
func A2Q(aa r3.Vector) quat.Number {
	theta := aa.Norm()
	if theta <= Epsilon {
		return quat.Number{Real: 1}
	}
	axis := aa.Mul(1 / theta)
	s := math.Sin(theta / 2)
	return quat.Number{
		Real: math.Cos(theta / 2),
		Imag: axis.X * s,
		Jmag: axis.Y * s,
		Kmag: axis.Z * s,
	}
}

// A2R converts an axis-angle vector to a rotation matrix.
func A2R(aa r3.Vector) *RotationMatrix {
	return Q2R(A2Q(aa))
}

// Q2A converts a unit quaternion to a canonical axis-angle vector via the
// logarithm map, in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func Q2A(q quat.Number) r3.Vector {
	denom := vecNorm(q)
	if denom < Epsilon {
		return r3.Vector{}
	}
	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}
	return A2A(r3.Vector{
		X: angle * q.Imag / denom,
		Y: angle * q.Jmag / denom,
		Z: angle * q.Kmag / denom,
	})
}

// R2A converts a rotation matrix to a canonical axis-angle vector.
func R2A(rm *RotationMatrix) r3.Vector {
	return Q2A(R2Q(rm))
}

// vecNorm returns the norm of the imaginary part of the quaternion.
func vecNorm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}
