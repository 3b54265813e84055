package spatialmath

import "github.com/golang/geo/r3"

// Epsilon is the magnitude below which a length or angle is treated as zero.
const Epsilon = 1e-8

// NewZeroRotationMatrix returns the identity rotation matrix.
func NewZeroRotationMatrix() *RotationMatrix {
	return &RotationMatrix{[9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// NewZeroTransform returns the identity transform.
func NewZeroTransform() *Transform {
	return NewTransform()
}

// ZeroPosition returns the origin.
func ZeroPosition() r3.Vector {
	return r3.Vector{}
}
