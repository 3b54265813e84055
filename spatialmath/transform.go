package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a 4x4 homogeneous transform whose top-left 3x3 block is a
// rotation, whose top-right 3x1 block is a translation, and whose bottom row
// is (0, 0, 0, 1). It decomposes uniquely into a rotation and a position.
type Transform struct {
	mat mgl64.Mat4
}

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	return &Transform{mgl64.Ident4()}
}

// At returns the value of the transform at the given row and column.
func (t *Transform) At(row, col int) float64 {
	return t.mat.At(row, col)
}

// Mat4 returns a copy of the underlying 4x4 matrix.
func (t *Transform) Mat4() mgl64.Mat4 {
	return t.mat
}

// Mul returns the composed transform t * other.
func (t *Transform) Mul(other *Transform) *Transform {
	return &Transform{t.mat.Mul4(other.mat)}
}

// T2Rp decomposes a transform into its rotation and position.
func T2Rp(t *Transform) (*RotationMatrix, r3.Vector) {
	var m [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[3*row+col] = t.At(row, col)
		}
	}
	return &RotationMatrix{m}, r3.Vector{X: t.At(0, 3), Y: t.At(1, 3), Z: t.At(2, 3)}
}

// T2Qp decomposes a transform into a unit quaternion and a position.
func T2Qp(t *Transform) (quat.Number, r3.Vector) {
	rm, p := T2Rp(t)
	return R2Q(rm), p
}

// T2R returns the rotation part of a transform.
func T2R(t *Transform) *RotationMatrix {
	rm, _ := T2Rp(t)
	return rm
}

// T2p returns the position part of a transform.
func T2p(t *Transform) r3.Vector {
	_, p := T2Rp(t)
	return p
}

// Rp2T composes a rotation and a position into a homogeneous transform.
func Rp2T(rm *RotationMatrix, p r3.Vector) *Transform {
	m := mgl64.Ident4()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m.Set(row, col, rm.At(row, col))
		}
	}
	m.Set(0, 3, p.X)
	m.Set(1, 3, p.Y)
	m.Set(2, 3, p.Z)
	return &Transform{m}
}

// Rp2TBatch composes slices of rotations and positions pairwise. A
// single-element slice on either side is broadcast against the other;
// otherwise the lengths must match.
func Rp2TBatch(rms []*RotationMatrix, ps []r3.Vector) ([]*Transform, error) {
	n := len(rms)
	if len(ps) > n {
		n = len(ps)
	}
	if (len(rms) != n && len(rms) != 1) || (len(ps) != n && len(ps) != 1) {
		return nil, errors.Errorf("cannot broadcast %d rotations against %d positions", len(rms), len(ps))
	}
	out := make([]*Transform, 0, n)
	for i := 0; i < n; i++ {
		rm := rms[0]
		if len(rms) > 1 {
			rm = rms[i]
		}
		p := ps[0]
		if len(ps) > 1 {
			p = ps[i]
		}
		out = append(out, Rp2T(rm, p))
	}
	return out, nil
}

// Qp2T composes a unit quaternion and a position into a transform.
func Qp2T(q quat.Number, p r3.Vector) *Transform {
	return Rp2T(Q2R(q), p)
}

// R2T lifts a rotation into a transform with zero translation.
func R2T(rm *RotationMatrix) *Transform {
	return Rp2T(rm, ZeroPosition())
}

// P2T lifts a position into a transform with identity rotation.
func P2T(p r3.Vector) *Transform {
	return Rp2T(NewZeroRotationMatrix(), p)
}

// Rp2Dq encodes a rotation and a position as a unit dual quaternion whose
// dual part is half the translation times the rotation.
func Rp2Dq(rm *RotationMatrix, p r3.Vector) dualquat.Number {
	rot := R2Q(rm)
	trans := quat.Number{Imag: p.X / 2, Jmag: p.Y / 2, Kmag: p.Z / 2}
	return dualquat.Number{Real: rot, Dual: quat.Mul(trans, rot)}
}

// Dq2Rp decodes a unit dual quaternion back into a rotation and a position.
func Dq2Rp(dq dualquat.Number) (*RotationMatrix, r3.Vector) {
	trans := quat.Scale(2, quat.Mul(dq.Dual, quat.Conj(dq.Real)))
	return Q2R(dq.Real), r3.Vector{X: trans.Imag, Y: trans.Jmag, Z: trans.Kmag}
}
