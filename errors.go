package tokentax

import (
	"fmt"
	"strings"
)

// DecodeError reports a cell that could not be decoded.
type DecodeError struct {
	Row   int    // Row is the 1-based record index in the input, the CSV header excluded. 0 if unknown.
	Field string // Field is the column name, e.g. "Type".
	Value string // Value is the raw cell content.
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: invalid %s %q: %v", e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeErrors lists the rows that failed to decode, in input order.
type DecodeErrors []*DecodeError

func (errs DecodeErrors) Error() string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Unwrap lets errors.As find the individual DecodeError.
func (errs DecodeErrors) Unwrap() []error {
	list := make([]error, len(errs))
	for i, e := range errs {
		list[i] = e
	}
	return list
}

// errOrNil avoids returning a typed nil.
func (errs DecodeErrors) errOrNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
