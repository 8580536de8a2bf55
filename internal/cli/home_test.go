package cli

import (
	"path/filepath"
	"testing"

	u "github.com/gleanserver/glean-events/internal/utils/test"

	"github.com/stretchr/testify/assert"
)

func TestHomeDir(t *testing.T) {
	home, teardownHomeDir := u.SetupHomeDir(t.TempDir())
	defer teardownHomeDir()

	t.Run("should return the home dir properly", func(t *testing.T) {
		dir, err := homeDir()
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "glean-events"), dir)
	})

	t.Run("should create the default profile in the home dir", func(t *testing.T) {
		profile, err := NewDefaultProfile()
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "glean-events", "default.yaml"), profile.Path())
	})
}
