package curve

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scaling(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotation(0)), p, epsilon)
	assertNear(t, p.Transform(Rotation(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translation(5, 6)), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Skew(0, 0)), p, epsilon)
	assertNear(t, p.Transform(Skew(2, 4)), Pt(11, 16), epsilon)
	assertNear(t, p.Transform(FlipX), Pt(-3, 4), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
}

func TestAffineRotateMatchesCis(t *testing.T) {
	const epsilon = 1e-12
	p := Pt(3, 4)
	for i := 0; i < 10; i++ {
		th := float64(i) * 0.45
		assertNear(t, p.Transform(Rotation(th)), p*Cis(th), epsilon)
	}
}

func TestAffineRotateAbout(t *testing.T) {
	const epsilon = 1e-9
	center := Pt(1, 1)
	aff := RotationAbout(math.Pi/2, center)
	assertNear(t, center.Transform(aff), center, epsilon)
	assertNear(t, Pt(2, 1).Transform(aff), Pt(1, 2), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)

	assertNear(t, pxy.Transform(a1.ThenScale(2, 3)), pxy.Transform(a1).ScaleXY(Pt(2, 3)), epsilon)
	assertNear(t, pxy.Transform(a1.PreTranslate(1, 2)), pxy.Translate(1, 2).Transform(a1), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestAffineCoefficients(t *testing.T) {
	a := Affine{1, 2, 3, 4, 5, 6}
	diff(t, a.Coefficients(), [6]float64{1, 2, 3, 4, 5, 6})
	diff(t, a.Offset(), Pt(5, 6))
	if d := a.Determinant(); d != -2 {
		t.Errorf("got determinant %v, want -2", d)
	}
}

func TestAffineInvertSingular(t *testing.T) {
	p := Pt(1, 1).Transform(Scaling(0, 1).Invert())
	if !p.IsNaN() && !p.IsInf() {
		t.Errorf("inverting a singular transform gave finite point %s", p)
	}
}
