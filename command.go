package quadxform

import (
	"fmt"
	"math"
	"strings"
)

// Command identifies one of the fixed-step transforms.
type Command uint8

const (
	CommandNone Command = iota // not a command; building it fails

	CommandTranslateLeft  // x -= 0.1
	CommandTranslateRight // x += 0.1
	CommandTranslateUp    // y += 0.1
	CommandTranslateDown  // y -= 0.1
	CommandRotateLeft     // +15° about the origin
	CommandRotateRight    // -15° about the origin
	CommandScaleXUp       // x *= 2
	CommandScaleXDown     // x *= 0.5
	CommandScaleYUp       // y *= 2
	CommandScaleYDown     // y *= 0.5
	CommandShearXUp       // x += 0.1*y
	CommandShearXDown     // x -= 0.1*y
	CommandShearYUp       // y += 0.1*x
	CommandShearYDown     // y -= 0.1*x

	commandCount
)

// Fixed step sizes for tag commands.
const (
	TranslateStep = 0.1
	RotateStep    = math.Pi / 12
	ScaleUpStep   = 2.0
	ScaleDownStep = 0.5
	ShearStep     = 0.1
)

var commandNames = [commandCount]string{
	CommandNone:           "none",
	CommandTranslateLeft:  "translate-left",
	CommandTranslateRight: "translate-right",
	CommandTranslateUp:    "translate-up",
	CommandTranslateDown:  "translate-down",
	CommandRotateLeft:     "rotate-left",
	CommandRotateRight:    "rotate-right",
	CommandScaleXUp:       "scale-x-up",
	CommandScaleXDown:     "scale-x-down",
	CommandScaleYUp:       "scale-y-up",
	CommandScaleYDown:     "scale-y-down",
	CommandShearXUp:       "shear-x-up",
	CommandShearXDown:     "shear-x-down",
	CommandShearYUp:       "shear-y-up",
	CommandShearYDown:     "shear-y-down",
}

// shortTags are the compact button tags (TXL, RR, SX+ ...) accepted as aliases.
var shortTags = map[string]Command{
	"TXL": CommandTranslateLeft,
	"TXR": CommandTranslateRight,
	"TYU": CommandTranslateUp,
	"TYD": CommandTranslateDown,
	"RL":  CommandRotateLeft,
	"RR":  CommandRotateRight,
	"SX+": CommandScaleXUp,
	"SX-": CommandScaleXDown,
	"SY+": CommandScaleYUp,
	"SY-": CommandScaleYDown,
	"SXR": CommandShearXUp,
	"SXL": CommandShearXDown,
	"SYU": CommandShearYUp,
	"SYD": CommandShearYDown,
}

// commandMatrices holds one fixed matrix per command.
var commandMatrices = [commandCount]Affine{
	CommandTranslateLeft:  Translate(-TranslateStep, 0),
	CommandTranslateRight: Translate(TranslateStep, 0),
	CommandTranslateUp:    Translate(0, TranslateStep),
	CommandTranslateDown:  Translate(0, -TranslateStep),
	CommandRotateLeft:     Rotate(RotateStep),
	CommandRotateRight:    Rotate(-RotateStep),
	CommandScaleXUp:       Scale(ScaleUpStep, 1),
	CommandScaleXDown:     Scale(ScaleDownStep, 1),
	CommandScaleYUp:       Scale(1, ScaleUpStep),
	CommandScaleYDown:     Scale(1, ScaleDownStep),
	CommandShearXUp:       Shear(ShearStep, 0),
	CommandShearXDown:     Shear(-ShearStep, 0),
	CommandShearYUp:       Shear(0, ShearStep),
	CommandShearYDown:     Shear(0, -ShearStep),
}

// Commands returns every valid command in declaration order.
func Commands() []Command {
	out := make([]Command, 0, commandCount-1)
	for c := CommandTranslateLeft; c < commandCount; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the known commands.
func (c Command) Valid() bool {
	return c > CommandNone && c < commandCount
}

// String returns the kebab-case command name.
func (c Command) String() string {
	if c < commandCount {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

// ParseCommand resolves a kebab-case name ("rotate-left") or a short tag
// ("RL"), ignoring case and surrounding whitespace.
func ParseCommand(name string) (Command, error) {
	s := strings.TrimSpace(name)
	if c, ok := shortTags[strings.ToUpper(s)]; ok {
		return c, nil
	}
	s = strings.ToLower(s)
	for c := CommandTranslateLeft; c < commandCount; c++ {
		if commandNames[c] == s {
			return c, nil
		}
	}
	return CommandNone, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, name)
}

// BuildCommand returns the fixed matrix for c. Unknown commands fail with
// ErrUnrecognizedCommand.
func BuildCommand(c Command) (Affine, error) {
	if !c.Valid() {
		return Identity(), fmt.Errorf("%w: %s", ErrUnrecognizedCommand, c)
	}
	return commandMatrices[c], nil
}
