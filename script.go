package quadxform

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string      `json:"action"`
	Name   string      `json:"name,omitempty"`
	Label  string      `json:"label,omitempty"`
	Frames int         `json:"frames,omitempty"`
	Fields *scriptForm `json:"fields,omitempty"`
}

// scriptForm mirrors the seven form fields by short key.
type scriptForm struct {
	DX      string `json:"dx"`
	DY      string `json:"dy"`
	Degrees string `json:"degrees"`
	SX      string `json:"sx"`
	SY      string `json:"sy"`
	ShX     string `json:"shx"`
	ShY     string `json:"shy"`
}

func (f *scriptForm) form() Form {
	if f == nil {
		return Form{}
	}
	return NewForm(f.DX, f.DY, f.Degrees, f.SX, f.SY, f.ShX, f.ShY)
}

// script is the top-level JSON structure.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// scriptTarget receives script actions. *App implements it.
type scriptTarget interface {
	Dispatch(cmd Command) error
	Submit(f Form) error
	Reset()
	Screenshot(label string)
}

// ScriptRunner replays commands, forms, resets and screenshots, one step per
// frame. A failing step is recorded and the script carries on.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadScript parses a JSON script such as:
//
//	{"steps": [
//		{"action": "command", "name": "rotate-left"},
//		{"action": "form", "fields": {"degrees": "180"}},
//		{"action": "wait", "frames": 10},
//		{"action": "screenshot", "label": "rotated"},
//		{"action": "reset"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "command":
			if _, err := ParseCommand(st.Name); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
		case "form", "reset", "screenshot", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Errors returns the errors of failed steps, in order.
func (r *ScriptRunner) Errors() []error {
	return r.errs
}

// step runs at most one action. Called once per frame from App.Update.
func (r *ScriptRunner) step(t scriptTarget) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "command":
		var cmd Command
		if cmd, err = ParseCommand(st.Name); err == nil {
			err = t.Dispatch(cmd)
		}
	case "form":
		err = t.Submit(st.Fields.form())
	case "reset":
		t.Reset()
	case "screenshot":
		t.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	if err != nil {
		err = fmt.Errorf("script step %d (%s): %w", r.cursor-1, st.Action, err)
		r.errs = append(r.errs, err)
		Logger().Warn("script step failed", slog.Any("err", err))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
		Logger().Info("script finished", slog.Int("steps", len(r.steps)), slog.Int("errors", len(r.errs)))
	}
}
