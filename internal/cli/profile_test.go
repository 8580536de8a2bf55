package cli

import (
	"testing"

	"github.com/gleanserver/glean-events/internal/glean"
	"github.com/gleanserver/glean-events/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "/home/.config/glean-events"

func TestProfile(t *testing.T) {
	t.Run("should load nothing when the profile does not exist", func(t *testing.T) {
		profile := NewProfileWithFs("test", testDir, afero.NewMemMapFs())

		require.NoError(t, profile.Load())
		assert.Equal(t, glean.AppInfo{}, profile.AppInfo())
		assert.Equal(t, telemetry.ModeNil, profile.TelemetryMode())
	})

	t.Run("should save and load the profile app info", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		profile := NewProfileWithFs("test", testDir, fs)
		require.NoError(t, profile.Load())
		profile.SetAppInfo(glean.AppInfo{ApplicationID: "my-app", DisplayVersion: "1.2.3", Channel: "production"})
		profile.SetTelemetryMode(telemetry.ModeOff)
		require.NoError(t, profile.Save())

		exists, err := afero.Exists(fs, testDir+"/test.yaml")
		require.NoError(t, err)
		assert.True(t, exists, "profile file must exist")

		loaded := NewProfileWithFs("test", testDir, fs)
		require.NoError(t, loaded.Load())
		assert.Equal(t, glean.AppInfo{ApplicationID: "my-app", DisplayVersion: "1.2.3", Channel: "production"}, loaded.AppInfo())
		assert.Equal(t, telemetry.ModeOff, loaded.TelemetryMode())
	})

	t.Run("should keep existing values when setting blank app info fields", func(t *testing.T) {
		profile := NewProfileWithFs("test", testDir, afero.NewMemMapFs())
		profile.SetAppInfo(glean.AppInfo{ApplicationID: "my-app", DisplayVersion: "1.2.3", Channel: "production"})
		profile.SetAppInfo(glean.AppInfo{DisplayVersion: "1.3.0"})

		assert.Equal(t, glean.AppInfo{ApplicationID: "my-app", DisplayVersion: "1.3.0", Channel: "production"}, profile.AppInfo())
	})

	t.Run("should read profile values from the environment", func(t *testing.T) {
		t.Setenv("GLEAN_EVENTS_ENV_APP_CHANNEL", "staging")

		profile := NewProfileWithFs("env", testDir, afero.NewMemMapFs())
		require.NoError(t, profile.Load())

		assert.Equal(t, "staging", profile.AppInfo().Channel)
	})

	t.Run("should fail to load a malformed profile", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, testDir+"/test.yaml", []byte("test: [app_id"), 0600))

		profile := NewProfileWithFs("test", testDir, fs)
		assert.Error(t, profile.Load())
	})
}

func TestProfileResolveFlags(t *testing.T) {
	t.Run("should use the saved telemetry mode without a flag", func(t *testing.T) {
		profile := NewProfileWithFs("test", testDir, afero.NewMemMapFs())
		profile.SetTelemetryMode(telemetry.ModeStdout)

		require.NoError(t, profile.resolveFlags())
		assert.Equal(t, telemetry.ModeStdout, profile.telemetryMode)
	})

	t.Run("should remember the telemetry mode set by flag", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		profile := NewProfileWithFs("test", testDir, fs)
		profile.telemetryMode = telemetry.ModeOff
		require.NoError(t, profile.resolveFlags())

		loaded := NewProfileWithFs("test", testDir, fs)
		require.NoError(t, loaded.Load())
		assert.Equal(t, telemetry.ModeOff, loaded.TelemetryMode())
	})
}
