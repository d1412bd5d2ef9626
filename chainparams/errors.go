package chainparams

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedParams   = errors.New("parameters malformed")
	ErrInvalidInteger    = errors.New("invalid integer")
	ErrUnknownDeployment = errors.New("unknown deployment")
	ErrInvalidValue      = errors.New("invalid value")
)

// OverrideError describes an operator override that could not be applied.
type OverrideError struct {
	// Option is the option name without the leading dash.
	Option string
	// Expected is the accepted shape of the value.
	Expected string
	// Value is the offending value, the full option value or a single field.
	Value string
	// Field names the offending field, empty when the whole value is wrong.
	Field string
	Err   error
}

func (e *OverrideError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("-%s: %v: %s (%s), expecting %s", e.Option, e.Err, e.Field, e.Value, e.Expected)
	}
	return fmt.Sprintf("-%s: %v (%s), expecting %s", e.Option, e.Err, e.Value, e.Expected)
}

func (e *OverrideError) Unwrap() error { return e.Err }
