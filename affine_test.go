package quadxform

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Affine) {
	t.Helper()
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func assertPoints(t *testing.T, name string, got, want []Vec2) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len = %d, want %d", name, len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i].X-want[i].X) > epsilon || math.Abs(got[i].Y-want[i].Y) > epsilon {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestIdentity(t *testing.T) {
	assertMatrix(t, "identity", Identity(), Affine{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0})
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestTranslatePoint(t *testing.T) {
	p := Translate(10, 20).TransformPoint(Vec2{1, 2})
	assertNear(t, "x", p.X, 11)
	assertNear(t, "y", p.Y, 22)
}

func TestRotate90(t *testing.T) {
	m := Rotate(math.Pi / 2)
	// cos=0, sin=1 → (0,-1,0, 1,0,0)
	assertMatrix(t, "rot90", m, Affine{A: 0, B: -1, D: 1, E: 0})
	p := m.TransformPoint(Vec2{1, 0})
	assertNear(t, "x", p.X, 0)
	assertNear(t, "y", p.Y, 1)
}

func TestRotateDegreesMatchesRadians(t *testing.T) {
	assertMatrix(t, "15deg", RotateDegrees(15), Rotate(math.Pi/12))
	assertMatrix(t, "180deg", RotateDegrees(180), Affine{A: -1, E: -1})
}

func TestScaleAndShear(t *testing.T) {
	assertMatrix(t, "scale", Scale(2, 3), Affine{A: 2, E: 3})
	assertMatrix(t, "shear", Shear(0.5, 0.25), Affine{A: 1, B: 0.5, D: 0.25, E: 1})

	p := Shear(0.5, 0).TransformPoint(Vec2{0, 2})
	assertNear(t, "shear.x", p.X, 1)
	assertNear(t, "shear.y", p.Y, 2)
}

func TestMultiplyIdentity(t *testing.T) {
	m := Affine{A: 2, B: 1, C: 3, D: 4, E: 5, F: 6}
	assertMatrix(t, "id*m", Identity().Multiply(m), m)
	assertMatrix(t, "m*id", m.Multiply(Identity()), m)
}

func TestMultiplyTranslations(t *testing.T) {
	got := Translate(10, 20).Multiply(Translate(5, 3))
	assertMatrix(t, "translations", got, Translate(15, 23))
}

func TestMultiplyAppliesRightFirst(t *testing.T) {
	// Scale then translate: (1,0) → (2,0) → (3,0).
	m := Translate(1, 0).Multiply(Scale(2, 2))
	p := m.TransformPoint(Vec2{1, 0})
	assertNear(t, "x", p.X, 3)
	assertNear(t, "y", p.Y, 0)

	// Translate then scale: (1,0) → (2,0) → (4,0).
	m = Scale(2, 2).Multiply(Translate(1, 0))
	p = m.TransformPoint(Vec2{1, 0})
	assertNear(t, "x", p.X, 4)
}

func TestIsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Error("identity should be finite")
	}
	if (Affine{A: math.NaN(), E: 1}).IsFinite() {
		t.Error("NaN coefficient reported finite")
	}
	if (Affine{A: 1, E: 1, F: math.Inf(-1)}).IsFinite() {
		t.Error("-Inf coefficient reported finite")
	}
}

func TestApproxEqual(t *testing.T) {
	a := Translate(1, 1)
	b := Translate(1+1e-12, 1)
	if !a.ApproxEqual(b, epsilon) {
		t.Error("expected approx equal")
	}
	if a.ApproxEqual(Translate(1.1, 1), epsilon) {
		t.Error("expected not equal")
	}
}
