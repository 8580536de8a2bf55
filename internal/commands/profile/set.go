package profile

import (
	"errors"

	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/glean"
	"github.com/gleanserver/glean-events/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagAppID      = "app-id"
	flagAppIDUsage = "the default Glean application id"

	flagAppVersion      = "app-version"
	flagAppVersionUsage = "the default application display version"

	flagAppChannel      = "app-channel"
	flagAppChannelUsage = "the default application channel"
)

var errNothingToSet = errors.New("at least one of --app-id, --app-version or --app-channel must be set")

// CommandSet is the `profile set` command
type CommandSet struct {
	app glean.AppInfo
}

// Flags is the command flags
func (cmd *CommandSet) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.app.ApplicationID, flagAppID, "", flagAppIDUsage)
	fs.StringVar(&cmd.app.DisplayVersion, flagAppVersion, "", flagAppVersionUsage)
	fs.StringVar(&cmd.app.Channel, flagAppChannel, "", flagAppChannelUsage)
}

// Handler is the command handler
func (cmd *CommandSet) Handler(profile *cli.Profile, ui terminal.UI, streams cli.Streams) error {
	if cmd.app == (glean.AppInfo{}) {
		return errNothingToSet
	}

	profile.SetAppInfo(cmd.app)
	if err := profile.Save(); err != nil {
		return err
	}
	return ui.Print(terminal.NewTextLog("Saved profile %s", profile.Name))
}
