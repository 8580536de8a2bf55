package cli

import (
	"errors"
)

// DisableUsage is an error that suppresses the usage text
type DisableUsage interface {
	DisableUsage() bool
}

type errDisableUsage struct {
	error
}

func (err errDisableUsage) DisableUsage() bool { return true }

func (err errDisableUsage) Unwrap() error { return err.error }

func usageDisabled(err error) bool {
	var du DisableUsage
	return errors.As(err, &du) && du.DisableUsage()
}

// ErrSuggester provides a list of suggestions displayed when an error occurs
type ErrSuggester interface {
	Suggestions() []interface{}
}

// NewErrWithSuggestions returns an error displayed along with the provided suggestions
func NewErrWithSuggestions(cause error, suggestions ...interface{}) error {
	return errWithSuggestions{cause, suggestions}
}

type errWithSuggestions struct {
	error
	suggestions []interface{}
}

func (err errWithSuggestions) Suggestions() []interface{} { return err.suggestions }

func (err errWithSuggestions) Unwrap() error { return err.error }

func suggestions(err error) []interface{} {
	var s ErrSuggester
	if errors.As(err, &s) {
		return s.Suggestions()
	}
	return nil
}
