package quadxform

import "unicode"

// maxFieldLen bounds the text a single form field accepts.
const maxFieldLen = 32

// FormEditor is the in-window numeric form. It only holds text and focus;
// submitting is the caller's job.
type FormEditor struct {
	form   Form
	focus  FormField
	active bool
}

// Open activates the editor, keeping any previous field text.
func (e *FormEditor) Open() {
	e.active = true
}

// Close deactivates the editor. Field text is kept for the next Open.
func (e *FormEditor) Close() {
	e.active = false
}

// Active reports whether the editor is taking keyboard input.
func (e *FormEditor) Active() bool {
	return e.active
}

// Focus returns the field receiving typed characters.
func (e *FormEditor) Focus() FormField {
	return e.focus
}

// SetFocus moves focus to f. Out-of-range values are ignored.
func (e *FormEditor) SetFocus(f FormField) {
	if f >= 0 && f < FormFieldCount {
		e.focus = f
	}
}

// Next moves focus to the following field, wrapping around.
func (e *FormEditor) Next() {
	e.focus = (e.focus + 1) % FormFieldCount
}

// Prev moves focus to the preceding field, wrapping around.
func (e *FormEditor) Prev() {
	e.focus = (e.focus + FormFieldCount - 1) % FormFieldCount
}

// Insert appends printable runes to the focused field. Validation happens on
// submit, so any printable character is accepted here.
func (e *FormEditor) Insert(rs []rune) {
	s := []rune(e.form.Fields[e.focus])
	for _, r := range rs {
		if !unicode.IsPrint(r) || len(s) >= maxFieldLen {
			continue
		}
		s = append(s, r)
	}
	e.form.Fields[e.focus] = string(s)
}

// Backspace removes the last rune of the focused field.
func (e *FormEditor) Backspace() {
	s := []rune(e.form.Fields[e.focus])
	if len(s) == 0 {
		return
	}
	e.form.Fields[e.focus] = string(s[:len(s)-1])
}

// ClearField empties the focused field.
func (e *FormEditor) ClearField() {
	e.form.Fields[e.focus] = ""
}

// Form returns the current field text.
func (e *FormEditor) Form() Form {
	return e.form
}

// SetForm replaces all field text.
func (e *FormEditor) SetForm(f Form) {
	e.form = f
}
