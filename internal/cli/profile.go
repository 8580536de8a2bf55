package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gleanserver/glean-events/internal/glean"
	"github.com/gleanserver/glean-events/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	envPrefix   = "glean_events"
	profileType = "yaml"
)

// set of supported CLI profile keys
const (
	keyAppID             = "app_id"
	keyAppDisplayVersion = "app_display_version"
	keyAppChannel        = "app_channel"
	keyTelemetryMode     = "telemetry_mode"
)

// set of profile flags
const (
	flagProfile      = "profile"
	flagProfileUsage = "this is the name of the CLI profile to use"
)

// Profile is the CLI profile
type Profile struct {
	Name string

	dir   string
	fs    afero.Fs
	viper *viper.Viper

	telemetryMode telemetry.Mode
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile stored in the user's home directory
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := homeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
	}
	return NewProfileWithFs(name, dir, afero.NewOsFs()), nil
}

// NewProfileWithFs creates a new CLI profile stored in dir on the provided filesystem
func NewProfileWithFs(name, dir string, fs afero.Fs) *Profile {
	v := viper.New()
	v.SetFs(fs)

	return &Profile{
		Name:  name,
		dir:   dir,
		fs:    fs,
		viper: v,
	}
}

// Dir returns the CLI profile directory
func (p *Profile) Dir() string { return p.dir }

// Fs returns the filesystem the CLI profile is stored on
func (p *Profile) Fs() afero.Fs { return p.fs }

// Path returns the CLI profile file path
func (p *Profile) Path() string {
	return filepath.Join(p.dir, p.Name+"."+profileType)
}

// Clear clears the specified CLI profile property
func (p *Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p *Profile) SetString(name, value string) {
	p.viper.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p *Profile) GetString(name string) string {
	return p.viper.GetString(p.propertyKey(name))
}

func (p *Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p *Profile) Load() error {
	p.viper.SetConfigName(p.Name)
	p.viper.AddConfigPath(p.dir)
	p.viper.SetConfigPermissions(0600)
	p.viper.SetConfigType(profileType)

	p.viper.SetEnvPrefix(envPrefix)
	p.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	p.viper.AutomaticEnv()

	if err := p.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %w", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %w", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %w", err)
		}
	}

	if err := p.viper.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}
	return nil
}

// AppInfo gets the default app info of the CLI profile
func (p *Profile) AppInfo() glean.AppInfo {
	return glean.AppInfo{
		ApplicationID:  p.GetString(keyAppID),
		DisplayVersion: p.GetString(keyAppDisplayVersion),
		Channel:        p.GetString(keyAppChannel),
	}
}

// SetAppInfo sets the default app info of the CLI profile
// Blank fields leave the existing values untouched
func (p *Profile) SetAppInfo(app glean.AppInfo) {
	for key, value := range map[string]string{
		keyAppID:             app.ApplicationID,
		keyAppDisplayVersion: app.DisplayVersion,
		keyAppChannel:        app.Channel,
	} {
		if value != "" {
			p.SetString(key, value)
		}
	}
}

// TelemetryMode gets the telemetry mode
func (p *Profile) TelemetryMode() telemetry.Mode {
	return telemetry.NewMode(p.GetString(keyTelemetryMode))
}

// SetTelemetryMode sets the telemetry mode
func (p *Profile) SetTelemetryMode(mode telemetry.Mode) {
	p.SetString(keyTelemetryMode, mode.String())
}

// resolveFlags remembers a telemetry mode set by flag, otherwise uses the saved one
func (p *Profile) resolveFlags() error {
	if p.telemetryMode == telemetry.ModeNil {
		p.telemetryMode = p.TelemetryMode()
		return nil
	}

	if p.telemetryMode == p.TelemetryMode() {
		return nil
	}

	p.SetTelemetryMode(p.telemetryMode)
	return p.Save()
}
