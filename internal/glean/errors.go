package glean

import (
	"fmt"
	"unicode/utf8"
)

// ErrMissingField is returned when a required field is left blank at construction
type ErrMissingField struct {
	Field string
}

func (err ErrMissingField) Error() string {
	return fmt.Sprintf("missing required field: %s", err.Field)
}

// ErrInvalidUTF8 is returned when a recorded field is not valid UTF-8
type ErrInvalidUTF8 struct {
	Field string
}

func (err ErrInvalidUTF8) Error() string {
	return fmt.Sprintf("field is not valid UTF-8: %s", err.Field)
}

// field is a named value written into a ping
type field struct {
	name  string
	value string
}

func checkUTF8(fields []field) error {
	for _, f := range fields {
		if !utf8.ValidString(f.value) {
			return ErrInvalidUTF8{f.name}
		}
	}
	return nil
}
