package curve

// Segment describes a single piece of a path with a start and an end point
// that can be moved around the plane.
//
// The type parameter S is the implementing type itself, so that transforms
// return the concrete segment kind rather than an interface value. A segment
// kind Foo satisfies Segment[Foo].
//
// Transforms never modify their receiver. Each call produces a new segment and
// the caller is expected to continue with the returned value, which makes
// chains such as
//
//	s.Translate(1, 0).RotateComplex(Cis(th)).Scale(Pt(2, 2))
//
// free of aliasing between the intermediate values.
type Segment[S any] interface {
	Start() Point
	End() Point

	// Translate shifts every defining point of the segment by (dx, dy).
	Translate(dx, dy float64) S

	// RotateComplex multiplies every defining point by cis, using complex
	// multiplication.
	//
	// cis should have unit magnitude, such as the values returned by [Cis].
	// No normalization takes place: any other magnitude scales the segment
	// about the origin in addition to rotating it.
	RotateComplex(cis Point) S

	// Scale multiplies the x coordinate of every defining point by
	// real(factor) and the y coordinate by imag(factor). The axes are
	// scaled independently; this is not a complex multiplication.
	Scale(factor Point) S
}

// Rotate rotates s about the origin by th radians.
//
// It is implemented in terms of [Segment.RotateComplex] and thus works for any
// segment kind. Because the multiplier always has unit magnitude, the result
// is a pure rotation.
func Rotate[S Segment[S]](s S, th float64) S {
	return s.RotateComplex(Cis(th))
}

// RotateAbout rotates s by th radians about center.
func RotateAbout[S Segment[S]](s S, th float64, center Point) S {
	cx, cy := center.Splat()
	return Rotate(s.Translate(-cx, -cy), th).Translate(cx, cy)
}

// ScaleAbout scales s by factor (see [Segment.Scale]) while keeping center
// fixed.
func ScaleAbout[S Segment[S]](s S, factor Point, center Point) S {
	cx, cy := center.Splat()
	return s.Translate(-cx, -cy).Scale(factor).Translate(cx, cy)
}

// Closed reports whether the segment ends where it starts.
func Closed[S Segment[S]](s S) bool {
	return s.Start() == s.End()
}

// CroppableSegment is a [Segment] that can be cut along vertical lines and
// mirrored across the line x = y. Cropping along horizontal lines follows
// from the two, see [CropY].
type CroppableSegment[S any] interface {
	Segment[S]

	// FlipAxes swaps the x and y coordinates of every defining point.
	FlipAxes() S

	// CropX returns the pieces of the segment on one side of the vertical
	// line at x: the side of smaller x if keepSmaller is true, the side of
	// larger x otherwise.
	CropX(x float64, keepSmaller bool) ([2]S, int)
}

// CropY returns the pieces of s above or below the horizontal line at y,
// keeping the side of smaller y if keepSmaller is true.
func CropY[S CroppableSegment[S]](s S, y float64, keepSmaller bool) ([2]S, int) {
	out, n := s.FlipAxes().CropX(y, keepSmaller)
	for i := range out[:n] {
		out[i] = out[i].FlipAxes()
	}
	return out, n
}
