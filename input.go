package quadxform

import (
	"errors"
	"fmt"
	"maps"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultBindings maps keys to transform commands.
var DefaultBindings = map[ebiten.Key]Command{
	ebiten.KeyArrowLeft:  CommandTranslateLeft,
	ebiten.KeyArrowRight: CommandTranslateRight,
	ebiten.KeyArrowUp:    CommandTranslateUp,
	ebiten.KeyArrowDown:  CommandTranslateDown,
	ebiten.KeyQ:          CommandRotateLeft,
	ebiten.KeyE:          CommandRotateRight,
	ebiten.KeyD:          CommandScaleXUp,
	ebiten.KeyA:          CommandScaleXDown,
	ebiten.KeyW:          CommandScaleYUp,
	ebiten.KeyS:          CommandScaleYDown,
	ebiten.KeyL:          CommandShearXUp,
	ebiten.KeyJ:          CommandShearXDown,
	ebiten.KeyI:          CommandShearYUp,
	ebiten.KeyK:          CommandShearYDown,
}

// Keys for actions that are not transforms. A binding on one of these keys
// takes precedence over the action.
const (
	keyReset      = ebiten.KeyR
	keyForm       = ebiten.KeyF
	keyHelp       = ebiten.KeyH
	keyScreenshot = ebiten.KeyF12
)

// controller turns key presses into session operations. It holds no GPU
// state, so scripts and tests drive it directly.
type controller struct {
	session  *Session
	editor   FormEditor
	bindings map[ebiten.Key]Command
	showHelp bool

	status    string
	statusErr bool

	// screenshot is called for the screenshot key. May be nil.
	screenshot func(label string)
}

func newController(s *Session, bindings map[ebiten.Key]Command) *controller {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &controller{session: s, bindings: maps.Clone(bindings)}
}

// pollInput reads this tick's key presses and typed characters from ebiten.
func (c *controller) pollInput() {
	keys := inpututil.AppendJustPressedKeys(nil)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	var chars []rune
	if c.editor.Active() {
		chars = ebiten.AppendInputChars(nil)
	}
	c.handleKeys(keys, shift, chars)
}

// handleKeys processes one tick of input. While the form is open, keys edit
// the form instead of triggering bindings.
func (c *controller) handleKeys(keys []ebiten.Key, shift bool, chars []rune) {
	if c.editor.Active() {
		c.handleFormKeys(keys, shift, chars)
		return
	}
	for _, k := range keys {
		if cmd, ok := c.bindings[k]; ok {
			c.dispatch(cmd)
			continue
		}
		switch k {
		case keyReset:
			c.session.Reset()
			c.setStatus("reset", nil)
		case keyForm:
			c.editor.Open()
			c.setStatus("form open: Tab moves, Enter applies, Esc closes", nil)
		case keyHelp:
			c.showHelp = !c.showHelp
		case keyScreenshot:
			if c.screenshot != nil {
				c.screenshot("manual")
			}
		}
	}
}

func (c *controller) handleFormKeys(keys []ebiten.Key, shift bool, chars []rune) {
	for _, k := range keys {
		switch k {
		case ebiten.KeyEscape:
			c.editor.Close()
			c.setStatus("form closed", nil)
			return
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			c.submit()
			return
		case ebiten.KeyTab:
			if shift {
				c.editor.Prev()
			} else {
				c.editor.Next()
			}
		case ebiten.KeyBackspace:
			c.editor.Backspace()
		case ebiten.KeyDelete:
			c.editor.ClearField()
		}
	}
	if len(chars) > 0 {
		c.editor.Insert(chars)
	}
}

func (c *controller) dispatch(cmd Command) {
	_, err := c.session.Dispatch(cmd)
	c.setStatus(cmd.String(), err)
}

// submit applies the form. A failure keeps the form open so the field can be
// corrected.
func (c *controller) submit() {
	_, err := c.session.Submit(c.editor.Form())
	if err != nil {
		c.setStatus("", err)
		var inv *InvalidInputError
		if errors.As(err, &inv) {
			for f := FormField(0); f < FormFieldCount; f++ {
				if f.Label() == inv.Field {
					c.editor.SetFocus(f)
				}
			}
		}
		return
	}
	c.editor.Close()
	c.setStatus("form applied", nil)
}

func (c *controller) setStatus(msg string, err error) {
	if err != nil {
		var inv *InvalidInputError
		if errors.As(err, &inv) {
			c.status = fmt.Sprintf("%s input not valid", inv.Field)
		} else {
			c.status = err.Error()
		}
		c.statusErr = true
		return
	}
	c.status = msg
	c.statusErr = false
}
