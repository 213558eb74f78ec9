package quadxform

import (
	"context"
	"fmt"
	"log/slog"
)

// Session runs the transform-and-rebuild pipeline: build a matrix from a
// command or form, apply it to the owned geometry, and bump the version the
// renderer watches. A failed build leaves geometry and version untouched.
type Session struct {
	xf      *Transformer
	version uint64
}

// NewSession starts a session from initial geometry.
func NewSession(initial []Vec2) *Session {
	return &Session{xf: NewTransformer(initial)}
}

// Dispatch applies the fixed matrix for cmd.
func (s *Session) Dispatch(cmd Command) ([]Vec2, error) {
	m, err := BuildCommand(cmd)
	if err != nil {
		Logger().Warn("command rejected", slog.String("command", cmd.String()), slog.Any("err", err))
		return s.xf.Points(), err
	}
	return s.apply(cmd.String(), m), nil
}

// DispatchName resolves name with ParseCommand and dispatches it.
func (s *Session) DispatchName(name string) ([]Vec2, error) {
	cmd, err := ParseCommand(name)
	if err != nil {
		Logger().Warn("command rejected", slog.String("command", name), slog.Any("err", err))
		return s.xf.Points(), err
	}
	return s.Dispatch(cmd)
}

// Submit applies the matrix composed from a numeric form.
func (s *Session) Submit(f Form) ([]Vec2, error) {
	m, err := BuildForm(f)
	if err != nil {
		Logger().Warn("form rejected", slog.Any("err", err))
		return s.xf.Points(), fmt.Errorf("quadxform: submit form: %w", err)
	}
	return s.apply("form", m), nil
}

// Reset restores the startup geometry. It counts as a geometry change.
func (s *Session) Reset() []Vec2 {
	s.xf.Reset()
	s.version++
	Logger().Debug("geometry reset", slog.Uint64("version", s.version))
	return s.xf.Points()
}

// Points returns a copy of the current geometry.
func (s *Session) Points() []Vec2 {
	return s.xf.Points()
}

// Version increases by one on every successful geometry change.
func (s *Session) Version() uint64 {
	return s.version
}

// Applied returns the number of matrices applied since the last reset.
func (s *Session) Applied() int {
	return s.xf.Applied()
}

func (s *Session) apply(source string, m Affine) []Vec2 {
	pts := s.xf.Apply(m)
	s.version++
	l := Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		b := Bounds(pts)
		l.Debug("transform applied",
			slog.String("source", source),
			slog.Any("matrix", [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}),
			slog.Bool("finite", m.IsFinite()),
			slog.Uint64("version", s.version),
			slog.Group("bounds",
				slog.Float64("x", b.X), slog.Float64("y", b.Y),
				slog.Float64("w", b.Width), slog.Float64("h", b.Height)),
		)
	}
	return pts
}
