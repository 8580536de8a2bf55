package profile

import (
	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/terminal"
)

const (
	headerKey   = "Key"
	headerValue = "Value"
)

// CommandDescribe is the `profile describe` command
type CommandDescribe struct{}

// Handler is the command handler
func (cmd *CommandDescribe) Handler(profile *cli.Profile, ui terminal.UI, streams cli.Streams) error {
	app := profile.AppInfo()

	rows := []map[string]interface{}{
		{headerKey: "app_id", headerValue: app.ApplicationID},
		{headerKey: "app_display_version", headerValue: app.DisplayVersion},
		{headerKey: "app_channel", headerValue: app.Channel},
		{headerKey: "telemetry_mode", headerValue: profile.TelemetryMode()},
	}

	return ui.Print(terminal.NewTableLog("Profile: "+profile.Name, []string{headerKey, headerValue}, rows...))
}
