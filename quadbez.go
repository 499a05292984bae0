package curve

import (
	"math"
)

var _ CroppableSegment[QuadraticBezierSegment] = QuadraticBezierSegment{}

// QuadraticBezierSegment is a quadratic Bézier curve. It starts at First, ends
// at Last and is pulled towards Control, which generally does not lie on the
// curve.
//
// All three points are subject to every transform. Segments where all points
// coincide are allowed and describe a single point.
type QuadraticBezierSegment struct {
	First   Point
	Control Point
	Last    Point
}

func (q QuadraticBezierSegment) Start() Point {
	return q.First
}

func (q QuadraticBezierSegment) End() Point {
	return q.Last
}

func (q QuadraticBezierSegment) Translate(dx, dy float64) QuadraticBezierSegment {
	offset := Pt(dx, dy)
	return QuadraticBezierSegment{
		First:   q.First + offset,
		Control: q.Control + offset,
		Last:    q.Last + offset,
	}
}

func (q QuadraticBezierSegment) RotateComplex(cis Point) QuadraticBezierSegment {
	return QuadraticBezierSegment{
		First:   q.First * cis,
		Control: q.Control * cis,
		Last:    q.Last * cis,
	}
}

// Rotate rotates the segment about the origin by th radians. See [Rotate].
func (q QuadraticBezierSegment) Rotate(th float64) QuadraticBezierSegment {
	return Rotate(q, th)
}

func (q QuadraticBezierSegment) Scale(factor Point) QuadraticBezierSegment {
	return QuadraticBezierSegment{
		First:   q.First.ScaleXY(factor),
		Control: q.Control.ScaleXY(factor),
		Last:    q.Last.ScaleXY(factor),
	}
}

func (q QuadraticBezierSegment) Transform(aff Affine) QuadraticBezierSegment {
	return QuadraticBezierSegment{
		First:   q.First.Transform(aff),
		Control: q.Control.Transform(aff),
		Last:    q.Last.Transform(aff),
	}
}

// Eval returns the point on the curve at parameter t.
func (q QuadraticBezierSegment) Eval(t float64) Point {
	mt := 1.0 - t
	return q.First.Mul(mt * mt).
		Add(q.Control.Mul(2 * mt * t)).
		Add(q.Last.Mul(t * t))
}

// Reverse returns the same curve traversed from Last to First.
func (q QuadraticBezierSegment) Reverse() QuadraticBezierSegment {
	return QuadraticBezierSegment{q.Last, q.Control, q.First}
}

// Divide splits the segment at t. The first result covers [0, t] and the
// second covers [t, 1].
func (q QuadraticBezierSegment) Divide(t float64) (QuadraticBezierSegment, QuadraticBezierSegment) {
	p1 := q.First.Lerp(q.Control, t)
	p2 := q.Control.Lerp(q.Last, t)
	pm := p1.Lerp(p2, t)
	return QuadraticBezierSegment{q.First, p1, pm},
		QuadraticBezierSegment{pm, p2, q.Last}
}

// FlipAxes mirrors the segment across the line x = y.
func (q QuadraticBezierSegment) FlipAxes() QuadraticBezierSegment {
	return QuadraticBezierSegment{
		First:   q.First.FlipAxes(),
		Control: q.Control.FlipAxes(),
		Last:    q.Last.FlipAxes(),
	}
}

// Extrema returns the parameter values in (0, 1) at which the curve has a
// horizontal or vertical tangent, in ascending order.
func (q QuadraticBezierSegment) Extrema() ([2]float64, int) {
	// The derivative is 2·(d0 + t·dd), linear in t, so each axis has at most
	// one root.
	var out [2]float64
	var n int
	d0 := q.Control - q.First
	dd := q.Last - q.Control - d0
	for _, c := range [2][2]float64{
		{real(d0), real(dd)},
		{imag(d0), imag(dd)},
	} {
		if c[1] == 0 {
			continue
		}
		if t := -c[0] / c[1]; t > 0 && t < 1 {
			out[n] = t
			n++
		}
	}
	if n == 2 && out[0] > out[1] {
		out[0], out[1] = out[1], out[0]
	}
	return out, n
}

// BoundingBox returns the smallest rectangle containing the curve. The
// control point is only included if it lies on the curve.
func (q QuadraticBezierSegment) BoundingBox() Rect {
	bbox := NewRectFromPoints(q.First, q.Last)
	ex, n := q.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(q.Eval(t))
	}
	return bbox
}

// IntersectX returns the parameter values at which the curve crosses the
// vertical line at x, in ascending order. The values are not restricted to
// [0, 1]; callers interested in the segment only have to discard those outside
// of it.
//
// If the whole curve lies on the line, IntersectX returns a single NaN.
func (q QuadraticBezierSegment) IntersectX(x float64) ([2]float64, int) {
	var out [2]float64
	a, b, c := q.First.X(), q.Control.X(), q.Last.X()

	switch {
	case a == b && b == c:
		if a == x {
			out[0] = math.NaN()
			return out, 1
		}
		return out, 0
	case a+c == 2*b:
		// x(t) is linear in t
		out[0] = (a - x) / 2 / (a - b)
		return out, 1
	default:
		disc := -a*c + a*x + b*b - 2*b*x + c*x
		if disc < 0 {
			return out, 0
		}
		sq := math.Sqrt(disc)
		denom := 1 / (-a + 2*b - c)
		t1 := (sq - a + b) * denom
		t2 := (-sq - a + b) * denom
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		out[0] = t1
		if t2 == t1 {
			return out, 1
		}
		out[1] = t2
		return out, 2
	}
}

// IntersectY is like [QuadraticBezierSegment.IntersectX] but for the
// horizontal line at y.
func (q QuadraticBezierSegment) IntersectY(y float64) ([2]float64, int) {
	return q.FlipAxes().IntersectX(y)
}

// CropX cuts the segment at the vertical line at x and returns the pieces
// lying on one side of it: left of the line if keepSmaller is true, right of
// it otherwise. There are at most two pieces.
//
// A segment lying entirely on the line is kept whole. A segment that only
// touches the line is kept whole if it is on the requested side and dropped
// otherwise.
func (q QuadraticBezierSegment) CropX(x float64, keepSmaller bool) ([2]QuadraticBezierSegment, int) {
	var out [2]QuadraticBezierSegment
	keep := func(segs ...QuadraticBezierSegment) ([2]QuadraticBezierSegment, int) {
		n := copy(out[:], segs)
		return out, n
	}
	inside := func(v float64) bool { return (v < x) == keepSmaller }
	firstIn := inside(q.First.X())
	lastIn := inside(q.Last.X())

	ts, n := q.IntersectX(x)
	switch n {
	case 0:
		if firstIn || q.First.X() == x {
			return keep(q)
		}
		return keep()
	case 1:
		t := ts[0]
		switch {
		case math.IsNaN(t):
			// on the line
			return keep(q)
		case (t <= 0 && lastIn) || (t >= 1 && firstIn):
			return keep(q)
		case t > 0 && t < 1:
			if firstIn && lastIn {
				// tangent
				return keep(q)
			}
			a, b := q.Divide(t)
			if firstIn {
				return keep(a)
			}
			if lastIn {
				return keep(b)
			}
		}
		return keep()
	}

	t1, t2 := ts[0], ts[1]
	unit := func(t float64) bool { return t >= 0 && t <= 1 }
	switch {
	case !unit(t1) && !unit(t2):
		if firstIn {
			return keep(q)
		}
		return keep()
	case t1 <= 0 && t2 >= 1:
		if inside(q.Control.X()) {
			return keep(q)
		}
		return keep()
	case t1 <= 0:
		a, b := q.Divide(t2)
		if firstIn {
			return keep(a)
		}
		return keep(b)
	case t2 >= 1:
		a, b := q.Divide(t1)
		if lastIn {
			return keep(b)
		}
		return keep(a)
	default:
		a, rest := q.Divide(t1)
		mid, b := rest.Divide((t2 - t1) / (1 - t1))
		if firstIn {
			return keep(a, b)
		}
		return keep(mid)
	}
}

// CropY is like [QuadraticBezierSegment.CropX] but for the horizontal line at
// y. See [CropY].
func (q QuadraticBezierSegment) CropY(y float64, keepSmaller bool) ([2]QuadraticBezierSegment, int) {
	return CropY(q, y, keepSmaller)
}

func (q QuadraticBezierSegment) IsInf() bool {
	return q.First.IsInf() || q.Control.IsInf() || q.Last.IsInf()
}

func (q QuadraticBezierSegment) IsNaN() bool {
	return q.First.IsNaN() || q.Control.IsNaN() || q.Last.IsNaN()
}
