package quadxform

// ApplyAffine transforms every point by m into a new slice of the same length
// and order. Order encodes triangle winding and is never changed. Non-finite
// coefficients produce non-finite coordinates; nothing is rejected.
func ApplyAffine(points []Vec2, m Affine) []Vec2 {
	dst := make([]Vec2, len(points))
	transformPoints(points, dst, m)
	return dst
}

// transformPoints writes m applied to src into dst. dst must be at least
// len(src) in length.
func transformPoints(src, dst []Vec2, m Affine) {
	a, b, c, d, e, f := m.A, m.B, m.C, m.D, m.E, m.F
	for i := range src {
		x, y := src[i].X, src[i].Y
		dst[i] = Vec2{
			X: a*x + b*y + c,
			Y: d*x + e*y + f,
		}
	}
}

// Transformer owns the current geometry. Each Apply starts from the result of
// the previous one; there is no transform history, so floating-point drift
// accumulates across applications.
type Transformer struct {
	initial []Vec2
	current []Vec2
	applied int
}

// NewTransformer copies initial as both the startup and current geometry.
func NewTransformer(initial []Vec2) *Transformer {
	t := &Transformer{
		initial: clonePoints(initial),
		current: clonePoints(initial),
	}
	return t
}

// Apply replaces the current geometry with m applied to it and returns a copy
// of the new geometry.
func (t *Transformer) Apply(m Affine) []Vec2 {
	t.current = ApplyAffine(t.current, m)
	t.applied++
	return clonePoints(t.current)
}

// Points returns a copy of the current geometry.
func (t *Transformer) Points() []Vec2 {
	return clonePoints(t.current)
}

// Len returns the number of vertices.
func (t *Transformer) Len() int {
	return len(t.current)
}

// Applied returns how many matrices have been applied since creation or the
// last Reset.
func (t *Transformer) Applied() int {
	return t.applied
}

// Reset restores the startup geometry.
func (t *Transformer) Reset() {
	t.current = clonePoints(t.initial)
	t.applied = 0
}

func clonePoints(p []Vec2) []Vec2 {
	out := make([]Vec2, len(p))
	copy(out, p)
	return out
}
