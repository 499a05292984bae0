package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Distance(p0); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// approxPoints compares points by distance instead of exact equality.
func approxPoints(epsilon float64) cmp.Option {
	return cmp.Comparer(func(a, b Point) bool {
		return a.Distance(b) <= epsilon
	})
}
