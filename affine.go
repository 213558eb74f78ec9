package quadxform

import "math"

// Affine is a 2D affine matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//	| 0  0  1 |
//
// It maps (x, y) to (A*x + B*y + C, D*x + E*y + F).
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity matrix (1,0,0,0,1,0).
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Affine {
	return Affine{A: 1, C: dx, E: 1, F: dy}
}

// Rotate returns a counter-clockwise rotation about the origin (radians).
func Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// RotateDegrees is Rotate with the angle given in degrees.
func RotateDegrees(deg float64) Affine {
	return Rotate(deg * math.Pi / 180)
}

// Scale returns an axis-aligned scale about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Shear returns a shear matrix. shx is the horizontal factor (x += shx*y),
// shy the vertical factor (y += shy*x).
func Shear(shx, shy float64) Affine {
	return Affine{A: 1, B: shx, D: shy, E: 1}
}

// Multiply returns m * o: o is applied first, then m.
func (m Affine) Multiply(o Affine) Affine {
	return Affine{
		A: m.A*o.A + m.B*o.D,
		B: m.A*o.B + m.B*o.E,
		C: m.A*o.C + m.B*o.F + m.C,
		D: m.D*o.A + m.E*o.D,
		E: m.D*o.B + m.E*o.E,
		F: m.D*o.C + m.E*o.F + m.F,
	}
}

// TransformPoint applies the matrix to a point.
func (m Affine) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsFinite reports whether every coefficient is a finite number.
func (m Affine) IsFinite() bool {
	for _, v := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every coefficient of m and o differs by at
// most eps.
func (m Affine) ApproxEqual(o Affine, eps float64) bool {
	a := [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
	b := [6]float64{o.A, o.B, o.C, o.D, o.E, o.F}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}
