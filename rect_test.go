package curve

import "testing"

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(3, -1), Pt(-2, 4))
	diff(t, r, Rect{-2, -1, 3, 4})
	if w, h := r.Width(), r.Height(); w != 5 || h != 5 {
		t.Errorf("got size %gx%g, want 5x5", w, h)
	}
}

func TestRectUnionPoint(t *testing.T) {
	r := NewRectFromPoints(Pt(0, 0), Pt(0, 0))
	for _, pt := range []Point{Pt(1, 2), Pt(-3, 1), Pt(0, -5)} {
		r = r.UnionPoint(pt)
	}
	diff(t, r, Rect{-3, -5, 1, 2})
	for _, pt := range []Point{Pt(1, 2), Pt(-3, 1), Pt(0, -5), Pt(0, 0)} {
		if !r.Contains(pt) {
			t.Errorf("%s does not contain %s", r, pt)
		}
	}
	if r.Contains(Pt(1.5, 0)) {
		t.Errorf("%s unexpectedly contains (1.5, 0)", r)
	}
}
