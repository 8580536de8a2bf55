package record

import (
	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/glean"
	"github.com/gleanserver/glean-events/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandMastodonAction is the `record mastodon-action` command
type CommandMastodonAction struct {
	inputs mastodonActionInputs
}

type mastodonActionInputs struct {
	appInputs
	glean.Action
}

// Flags is the command flags
func (cmd *CommandMastodonAction) Flags(fs *pflag.FlagSet) {
	cmd.inputs.appInputs.flags(fs)
	fs.StringVar(&cmd.inputs.AccountID, flagAccountID, "", flagAccountIDUsage)
	fs.StringVar(&cmd.inputs.Controller, flagController, "", flagControllerUsage)
	fs.StringVar(&cmd.inputs.Method, flagMethod, "", flagMethodUsage)
	fs.StringVar(&cmd.inputs.Path, flagPath, "", flagPathUsage)
	fs.StringVar(&cmd.inputs.StatusCode, flagStatusCode, "", flagStatusCodeUsage)
	fs.StringVar(&cmd.inputs.UserID, flagUserID, "", flagUserIDUsage)
}

// Inputs is the command inputs
func (cmd *CommandMastodonAction) Inputs() cli.InputResolver {
	return &cmd.inputs.appInputs
}

// Handler is the command handler
func (cmd *CommandMastodonAction) Handler(profile *cli.Profile, ui terminal.UI, streams cli.Streams) error {
	action, err := glean.NewMastodonAction(
		cmd.inputs.AppInfo,
		cmd.inputs.RequestInfo,
		cmd.inputs.Action,
		glean.WithLogger(glean.NewLogger(streams.Out)),
	)
	if err != nil {
		return err
	}

	if err := action.Record(); err != nil {
		return err
	}
	return ui.Print(terminal.NewTextLog("Recorded mastodon action %s %s for %s", cmd.inputs.Method, cmd.inputs.Path, cmd.inputs.ApplicationID))
}
