package curve

import (
	"math"
)

// Affine is a general affine map of the plane, for transforms that segments
// have no dedicated method for (skews, reflections) and for collapsing a
// chain of transforms into a single value.
//
// The coefficients (a, b, c, d, e, f) map the point x + iy to
//
//	(a·x + c·y + e) + i(b·x + d·y + f)
//
// which is the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// applied to the column vector (x, y, 1). Products read right to left:
// p.Transform(A.Mul(B)) == p.Transform(B).Transform(A).
//
// [Rotation] agrees with multiplying by [Cis], [Scaling] with
// [Point.ScaleXY] and [Translation] with [Point.Translate], so a segment
// transformed by an Affine built from them matches the result of the
// corresponding chain of segment methods.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// FlipX is a transform that is flipped on the x-axis.
var FlipX = Affine{-1, 0, 0, 1, 0, 0}

// Scaling creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
//
// It matches [Segment.Scale] with a factor of Pt(x, y).
func Scaling(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translation creates an affine transform representing translation by (dx, dy).
func Translation(dx, dy float64) Affine {
	return Affine{1, 0, 0, 1, dx, dy}
}

// Rotation creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y, the same as multiplying by [Cis].
//
// The angle th is expressed in radians.
func Rotation(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotationAbout creates an affine transform representing a rotation of th radians
// about center.
func RotationAbout(th float64, center Point) Affine {
	cx, cy := center.Splat()
	return Translation(-cx, -cy).ThenRotate(th).ThenTranslate(cx, cy)
}

// Skew creates an affine transformation representing a skew.
//
// The x and y parameters represent skew factors for the horizontal and vertical
// directions, respectively.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate returns aff followed by a rotation of th radians about the
// origin, the same rotation as [Segment.RotateComplex] with Cis(th).
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotation(th).Mul(aff)
}

// ThenScale returns aff followed by scaling x by sx and y by sy, like
// [Segment.Scale] with Pt(sx, sy).
func (aff Affine) ThenScale(sx, sy float64) Affine {
	return Scaling(sx, sy).Mul(aff)
}

// PreTranslate returns a translation by (dx, dy) followed by aff.
func (aff Affine) PreTranslate(dx, dy float64) Affine {
	return aff.Mul(Translation(dx, dy))
}

// ThenTranslate returns aff followed by a translation by (dx, dy). Only the
// offset column changes.
func (aff Affine) ThenTranslate(dx, dy float64) Affine {
	aff.N4 += dx
	aff.N5 += dy
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the transform that undoes aff.
//
// Like the rest of the package it does not report errors: a singular aff
// (zero determinant, such as Scaling(0, 1)) yields NaN or infinite
// coefficients, which Point.IsNaN and Point.IsInf detect after transforming.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Offset returns the translation component of this affine transformation.
func (aff Affine) Offset() Point {
	return Pt(aff.N4, aff.N5)
}
