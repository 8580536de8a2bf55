package telemetry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode(t *testing.T) {
	for _, tc := range []Mode{
		// add all modes here
		ModeNil,
		ModeOn,
		ModeStdout,
		ModeOff,
	} {
		t.Run(fmt.Sprintf("%q should be valid", tc), func(t *testing.T) {
			assert.True(t, isValidMode(tc), "must be valid mode")
		})
	}

	t.Run("should have the correct type representation", func(t *testing.T) {
		assert.Equal(t, "string", ModeOn.Type())
	})

	t.Run("should set its value correctly with a valid mode", func(t *testing.T) {
		var m Mode

		assert.NoError(t, m.Set("on"))
		assert.Equal(t, "on", m.String())

		assert.NoError(t, m.Set(""))
		assert.Equal(t, "", m.String())
	})

	t.Run("should return an error when setting its value with an invalid mode", func(t *testing.T) {
		var m Mode
		assert.Equal(t, errors.New("unsupported value, use one of [on, stdout, off] instead"), m.Set("eggcorn"))
	})

	t.Run("should fall back to the nil mode for unknown values", func(t *testing.T) {
		assert.Equal(t, ModeNil, NewMode("eggcorn"))
		assert.Equal(t, ModeStdout, NewMode("stdout"))
	})
}
