package mock

import (
	"testing"

	"github.com/gleanserver/glean-events/internal/cli"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// ProfileDir is the directory mock CLI profiles are stored in
const ProfileDir = "/home/.config/glean-events"

// NewProfile returns a new CLI profile with a random name backed by an in-memory filesystem
func NewProfile(t *testing.T) *cli.Profile {
	t.Helper()
	return NewProfileWithFs(t, afero.NewMemMapFs())
}

// NewProfileWithFs returns a new CLI profile with a random name backed by the provided filesystem
func NewProfileWithFs(t *testing.T, fs afero.Fs) *cli.Profile {
	t.Helper()
	return cli.NewProfileWithFs(uuid.New().String(), ProfileDir, fs)
}
