package regmap

import (
	"errors"
	"fmt"
)

// Errors returned by field validation and range-checked writes.
var (
	ErrFieldWidth    = errors.New("field width must be 1 to 16 bits")
	ErrFieldOverflow = errors.New("field does not fit a 16-bit register")
	ErrOutOfRange    = errors.New("value out of range")
)

// RangeError reports an attempt to write a value a register field
// cannot hold. The register is left unmodified whenever a RangeError
// is returned.
type RangeError struct {
	Register string // register the write was aimed at
	Field    string // field name from the descriptor
	Unit     string // accessor instance that rejected the write, e.g. "floodlamp #42"
	Value    uint16 // the rejected value
	Min      uint16 // lowest accepted value
	Max      uint16 // highest accepted value
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cannot set %s %s to %d: valid range is %d:%d",
		e.Unit, e.Field, e.Value, e.Min, e.Max)
}

// Unwrap lets errors.Is match a RangeError against ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
