package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestA2ACanonicalization(t *testing.T) {
	// magnitudes at or below π are already canonical
	noops := []r3.Vector{
		{},
		{X: 1},
		{X: 0, Y: math.Pi, Z: 0},
		{X: 1, Y: 1, Z: 1},
	}
	for _, aa := range noops {
		test.That(t, A2A(aa), test.ShouldResemble, aa)
	}

	// magnitudes in (π, 2π] flip the axis and complement the angle
	aa := r3.Vector{X: 3 * math.Pi / 2}
	canonical := A2A(aa)
	test.That(t, canonical.X, test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, canonical.Y, test.ShouldAlmostEqual, 0)
	test.That(t, canonical.Z, test.ShouldAlmostEqual, 0)
	test.That(t, canonical.Norm(), test.ShouldBeLessThanOrEqualTo, math.Pi)

	// canonical output must represent the same rotation
	test.That(t, QuaternionAlmostEqual(A2Q(aa), A2Q(canonical), 1e-8), test.ShouldBeTrue)
}

func TestA2AOutOfRange(t *testing.T) {
	SetLogger(golog.NewTestLogger(t))
	defer SetLogger(golog.Global())

	// magnitudes above 2π are reduced modulo 2π, with a warning
	aa := r3.Vector{X: 2*math.Pi + 1}
	reduced := A2A(aa)
	test.That(t, reduced.X, test.ShouldAlmostEqual, 1)
	test.That(t, reduced.Y, test.ShouldAlmostEqual, 0)
	test.That(t, reduced.Z, test.ShouldAlmostEqual, 0)

	aa = r3.Vector{Y: 4*math.Pi + 3*math.Pi/2}
	reduced = A2A(aa)
	test.That(t, reduced.Y, test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, reduced.Norm(), test.ShouldBeLessThanOrEqualTo, math.Pi)
}

func TestExpMapIdentity(t *testing.T) {
	test.That(t, A2Q(r3.Vector{}), test.ShouldResemble, quat.Number{Real: 1})
	matricesAlmostEqual(t, A2R(r3.Vector{}), NewZeroRotationMatrix(), 1e-12)
}

func TestA2QFixture(t *testing.T) {
	// 90 degrees about x
	q := A2Q(r3.Vector{X: math.Pi / 2})
	test.That(t, q.Real, test.ShouldAlmostEqual, math.Sqrt2/2)
	test.That(t, q.Imag, test.ShouldAlmostEqual, math.Sqrt2/2)
	test.That(t, q.Jmag, test.ShouldAlmostEqual, 0)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, 0)
}

func TestQ2AFixture(t *testing.T) {
	th := math.Pi / 4.
	q45x := quat.Number{Real: math.Cos(th / 2), Imag: math.Sin(th / 2)}

	aa := Q2A(q45x)
	test.That(t, aa.X, test.ShouldAlmostEqual, th)
	test.That(t, aa.Y, test.ShouldAlmostEqual, 0)
	test.That(t, aa.Z, test.ShouldAlmostEqual, 0)

	// the flipped quaternion is the same rotation
	aa = Q2A(Flip(q45x))
	test.That(t, aa.X, test.ShouldAlmostEqual, th)
	test.That(t, aa.Y, test.ShouldAlmostEqual, 0)
	test.That(t, aa.Z, test.ShouldAlmostEqual, 0)

	// identity maps to the zero vector
	test.That(t, Q2A(quat.Number{Real: 1}), test.ShouldResemble, r3.Vector{})
}

func TestAxisAngleRoundTrips(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		q := randomQuaternion(r)
		rm := Q2R(q)

		matricesAlmostEqual(t, A2R(R2A(rm)), rm, 1e-8)
		test.That(t, QuaternionAlmostEqual(A2Q(Q2A(q)), q, 1e-8), test.ShouldBeTrue)

		// R2A always produces a canonical magnitude
		test.That(t, R2A(rm).Norm(), test.ShouldBeLessThanOrEqualTo, math.Pi+1e-12)
	}
}
