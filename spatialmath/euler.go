package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/luochang212/fairmotion/utils"
)

// EulerAngles are three sequential rotation angles about the x, y and z
// axes, in radians, in that order.
type EulerAngles struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// R2E extracts x-y-z Euler angles from a rotation matrix, following the
// convention of the Martinez et al. human-motion-prediction code. Gimbal
// lock, where rm[0][2] is exactly ±1, is handled by an explicit branch: Y is
// pinned to ∓π/2 and Z to 0, so the result is never NaN. In the normal
// branch rm[0][2] is clipped to [-1, 1] before the arcsine for numerical
// safety.
func R2E(rm *RotationMatrix) EulerAngles {
	var e1, e2, e3 float64
	switch {
	case rm.At(0, 2) == 1:
		e2 = -math.Pi / 2
		e1 = math.Atan2(rm.At(0, 1), rm.At(0, 2))
	case rm.At(0, 2) == -1:
		e2 = math.Pi / 2
		e1 = math.Atan2(rm.At(0, 1), rm.At(0, 2))
	default:
		e2 = -math.Asin(utils.Clamp(rm.At(0, 2), -1, 1))
		cosE2 := math.Cos(e2)
		e1 = math.Atan2(rm.At(1, 2)/cosE2, rm.At(2, 2)/cosE2)
		e3 = math.Atan2(rm.At(0, 1)/cosE2, rm.At(0, 0)/cosE2)
	}
	return EulerAngles{X: e1, Y: e2, Z: e3}
}

// Q2E converts a unit quaternion to x-y-z Euler angles, following the
// QuaterNet formulas. There is no explicit gimbal-lock branch; instead the
// arcsine argument is clipped to [-1+epsilon, 1-epsilon] with the
// caller-supplied slack, which absorbs the singularity at the poles. Note
// that Q2E and R2E intentionally keep the differing conventions of their
// respective upstream sources: Q2E(q) is the componentwise negation of
// R2E(Q2R(q)), and the two are not interchangeable.
func Q2E(q quat.Number, epsilon float64) EulerAngles {
	q0, q1, q2, q3 := q.Real, q.Imag, q.Jmag, q.Kmag
	return EulerAngles{
		X: math.Atan2(2*(q0*q1-q2*q3), 1-2*(q1*q1+q2*q2)),
		Y: math.Asin(utils.Clamp(2*(q1*q3+q0*q2), -1+epsilon, 1-epsilon)),
		Z: math.Atan2(2*(q0*q3-q1*q2), 1-2*(q2*q2+q3*q3)),
	}
}

// E2R composes x-y-z Euler angles into a rotation matrix. It is the exact
// inverse of R2E: R2E(E2R(ea)) == ea away from gimbal lock.
func E2R(ea EulerAngles) *RotationMatrix {
	return Ax2R(-ea.X).Mul(Ay2R(-ea.Y)).Mul(Az2R(-ea.Z))
}

// E2Q composes x-y-z Euler angles into a unit quaternion, consistent with
// E2R.
func E2Q(ea EulerAngles) quat.Number {
	return R2Q(E2R(ea))
}
