package quadxform

import (
	"math"
	"strconv"
	"strings"
)

// FormField indexes the seven numeric form fields.
type FormField int

const (
	FieldTranslateX FormField = iota
	FieldTranslateY
	FieldDegrees
	FieldScaleX
	FieldScaleY
	FieldShearX
	FieldShearY

	FormFieldCount
)

var formFieldLabels = [FormFieldCount]string{
	FieldTranslateX: "Transform X",
	FieldTranslateY: "Transform Y",
	FieldDegrees:    "Rotation Degrees",
	FieldScaleX:     "Scalar X",
	FieldScaleY:     "Scalar Y",
	FieldShearX:     "Horizontal Shear",
	FieldShearY:     "Vertical Shear",
}

// Label returns the field's display name, used in error messages.
func (f FormField) Label() string {
	if f < 0 || f >= FormFieldCount {
		return ""
	}
	return formFieldLabels[f]
}

// Form is the raw text of the numeric form. Empty fields mean 0.
type Form struct {
	Fields [FormFieldCount]string
}

// NewForm builds a Form from the seven field strings in order:
// dx, dy, degrees, sx, sy, shx, shy.
func NewForm(dx, dy, degrees, sx, sy, shx, shy string) Form {
	return Form{Fields: [FormFieldCount]string{dx, dy, degrees, sx, sy, shx, shy}}
}

// FormParams holds the parsed form values.
type FormParams struct {
	DX, DY   float64
	Degrees  float64
	SX, SY   float64
	ShX, ShY float64
}

// ParseForm parses every field. The first field that is non-empty and not a
// finite number fails with an *InvalidInputError naming it.
func ParseForm(f Form) (FormParams, error) {
	var v [FormFieldCount]float64
	for i := FormField(0); i < FormFieldCount; i++ {
		x, err := parseField(i, f.Fields[i])
		if err != nil {
			return FormParams{}, err
		}
		v[i] = x
	}
	return FormParams{
		DX: v[FieldTranslateX], DY: v[FieldTranslateY],
		Degrees: v[FieldDegrees],
		SX:      v[FieldScaleX], SY: v[FieldScaleY],
		ShX: v[FieldShearX], ShY: v[FieldShearY],
	}, nil
}

func parseField(field FormField, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || isHexFloat(s) || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidInputError{Field: field.Label(), Value: raw}
	}
	return v, nil
}

// isHexFloat reports a 0x or 0X prefix after an optional sign. Only decimal
// input is accepted.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Matrix composes the parameters into one matrix. Points are scaled first,
// then sheared, rotated about the origin, and finally translated:
//
//	M = Translate(DX, DY) * Rotate(Degrees) * Shear(ShX, ShY) * Scale(SX, SY)
//
// A zero scale factor leaves that axis unscaled, so an all-empty form is the
// identity.
func (p FormParams) Matrix() Affine {
	sx, sy := p.SX, p.SY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	m := Scale(sx, sy)
	m = Shear(p.ShX, p.ShY).Multiply(m)
	m = RotateDegrees(p.Degrees).Multiply(m)
	return Translate(p.DX, p.DY).Multiply(m)
}

// BuildForm parses f and composes its matrix.
func BuildForm(f Form) (Affine, error) {
	p, err := ParseForm(f)
	if err != nil {
		return Identity(), err
	}
	return p.Matrix(), nil
}
