// Package curve provides 2D path segments that can be moved around the plane
// with chained affine transforms.
//
// # Points
//
// A [Point] is a complex number: the real part is x and the imaginary part is
// y. This makes rotation about the origin a plain complex multiplication by a
// unit-magnitude value, which [Cis] computes from an angle.
//
// # Segments
//
// [Segment] is the set of operations every segment kind supports: reading its
// start and end points, and translating, rotating and scaling it. The package
// currently provides one segment kind, [QuadraticBezierSegment].
//
// Segments are values. Transforms never modify the segment they are called on
// and instead return a new one, so transforms can be chained:
//
//	q = q.Translate(10, 0).Rotate(math.Pi / 4).Scale(curve.Pt(2, 1))
//
// After a transform, callers should continue with the returned segment and
// treat the old one as used up.
//
// Operations that only need the [Segment] methods are written once as generic
// functions and work for all segment kinds: [Rotate], [RotateAbout],
// [ScaleAbout] and [Closed].
//
// # Rotation and scaling
//
// [Segment.RotateComplex] multiplies every point by a complex number. It does
// not check that the multiplier has unit magnitude; a multiplier of magnitude
// m rotates and scales by m at the same time. [Rotate] always passes a unit
// multiplier and thus only rotates.
//
// [Segment.Scale] is different: it scales x by the real part and y by the
// imaginary part of its argument, independently of each other. Scaling by
// Pt(2, 1) stretches a segment horizontally and leaves its y coordinates
// alone.
//
// Transforms that segments have no dedicated method for, such as skews, can
// be expressed with [Affine].
package curve
