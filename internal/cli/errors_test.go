package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("should disable usage through wrapped errors", func(t *testing.T) {
		err := fmt.Errorf("record failed: %w", errDisableUsage{errors.New("something bad happened")})

		assert.True(t, usageDisabled(err), "usage must be disabled")
		assert.False(t, usageDisabled(errors.New("something bad happened")), "usage must not be disabled")
	})

	t.Run("should find suggestions through wrapped errors", func(t *testing.T) {
		cause := errors.New("something bad happened")
		err := fmt.Errorf("record failed: %w", errDisableUsage{NewErrWithSuggestions(cause, "one", "two")})

		assert.Equal(t, []interface{}{"one", "two"}, suggestions(err))
		assert.True(t, errors.Is(err, cause), "cause must be unwrapped")
		assert.Equal(t, "record failed: something bad happened", err.Error())
		assert.Nil(t, suggestions(cause))
	})
}
