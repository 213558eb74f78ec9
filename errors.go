package quadxform

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumericInput is returned when a form field is non-empty but
	// does not hold a finite number.
	ErrInvalidNumericInput = errors.New("quadxform: invalid numeric input")

	// ErrUnrecognizedCommand is returned for a command tag outside the known set.
	ErrUnrecognizedCommand = errors.New("quadxform: unrecognized command")
)

// InvalidInputError names the form field that failed to parse.
// errors.Is(err, ErrInvalidNumericInput) holds for every InvalidInputError.
type InvalidInputError struct {
	Field string // human-readable label, e.g. "Rotation Degrees"
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s input not valid: %q", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidNumericInput
}
