package curve

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Point is a position in the plane, stored as a complex number whose real part
// is x and whose imaginary part is y.
//
// Because Point is a complex128, the usual arithmetic operators work on it
// directly. In particular, p * Cis(th) rotates p about the origin by th
// radians.
type Point complex128

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point(complex(x, y))
}

// Cis returns cos(th) + i·sin(th), the unit-magnitude multiplier that rotates
// a point by th radians.
//
// With th = 0, the result is (1, 0). At π/2, it is (0, 1). Thus, in a y-down
// coordinate system (as is common for graphics), positive angles rotate
// clockwise, and in y-up (traditional for math), anti-clockwise.
func Cis(th float64) Point {
	y, x := math.Sincos(th)
	return Pt(x, y)
}

func (pt Point) X() float64 { return real(pt) }
func (pt Point) Y() float64 { return imag(pt) }

// Splat returns the point's x and y coordinates.
func (pt Point) Splat() (float64, float64) {
	return real(pt), imag(pt)
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", real(pt), imag(pt))
}

// Translate returns pt shifted by (dx, dy).
func (pt Point) Translate(dx, dy float64) Point {
	return pt + Pt(dx, dy)
}

func (pt Point) Add(o Point) Point { return pt + o }
func (pt Point) Sub(o Point) Point { return pt - o }

// Mul multiplies both coordinates by f.
func (pt Point) Mul(f float64) Point {
	return Pt(real(pt)*f, imag(pt)*f)
}

// MulComplex returns the complex product of pt and o.
//
// If o has unit magnitude, this is a rotation about the origin. Otherwise the
// result is additionally scaled by |o|.
func (pt Point) MulComplex(o Point) Point {
	return pt * o
}

// ScaleXY multiplies x by the real part of f and y by the imaginary part of f.
// Unlike [Point.MulComplex], the two axes are scaled independently.
func (pt Point) ScaleXY(f Point) Point {
	return Pt(real(pt)*real(f), imag(pt)*imag(f))
}

// Transform applies an affine transformation to pt.
func (pt Point) Transform(aff Affine) Point {
	x, y := pt.Splat()
	return Pt(
		aff.N0*x+aff.N2*y+aff.N4,
		aff.N1*x+aff.N3*y+aff.N5,
	)
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	// pt + t * (o-pt)
	return pt + o.Sub(pt).Mul(t)
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return (pt + o).Mul(0.5)
}

// Hypot returns the distance of pt from the origin.
func (pt Point) Hypot() float64 {
	return cmplx.Abs(complex128(pt))
}

// Hypot2 returns the squared distance of pt from the origin.
//
// This function is more efficient than squaring the result of [Point.Hypot].
func (pt Point) Hypot2() float64 {
	x, y := pt.Splat()
	return x*x + y*y
}

// Angle returns the angle in radians between pt and (1, 0) in the positive y
// direction. This is atan2(y, x).
func (pt Point) Angle() float64 {
	return cmplx.Phase(complex128(pt))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// FlipAxes returns the mirror image of pt across the line x = y.
func (pt Point) FlipAxes() Point {
	return Pt(imag(pt), real(pt))
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(real(pt), 0) || math.IsInf(imag(pt), 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(real(pt)) || math.IsNaN(imag(pt))
}
