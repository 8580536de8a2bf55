package commands

import (
	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/commands/profile"
	"github.com/gleanserver/glean-events/internal/commands/record"
	"github.com/gleanserver/glean-events/internal/commands/validate"
)

// set of commands
var (
	Record = cli.CommandDefinition{
		Use:         "record",
		Description: "Record Glean server events as mozlog log lines",
		Help: `Record Glean server events as mozlog log lines

	Writes one JSON log line to stdout for each recorded ping, ready to be
	collected by the log forwarder of the ingestion pipeline. The application
	id, version and channel default to the values saved in your CLI profile.`,
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "event",
				Display:     "record event",
				Description: "Record an event ping",
				Help: `Record an event ping

	Use --metrics-file to check the event and its extras against the
	metrics.yaml files declaring them.`,
				Command: &record.CommandEvent{},
			},
			{
				Use:         "mastodon-action",
				Display:     "record mastodon-action",
				Description: "Record a mastodon-action ping",
				Command:     &record.CommandMastodonAction{},
			},
		},
	}

	Validate = cli.CommandDefinition{
		Use:         "validate",
		Description: "Validate recorded Glean server event log lines",
		Help: `Validate recorded Glean server event log lines

	Reads log lines from --file or stdin, skipping any line that is not a Glean
	server event, and checks the log line and its payload against the ping
	schemas.`,
		Command: &validate.Command{},
	}

	Profile = cli.CommandDefinition{
		Use:         "profile",
		Aliases:     []string{"profiles"},
		Description: "Manage the profiles of your CLI environment",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "profile list",
				Description: "List the profiles of your CLI environment",
				Command:     &profile.CommandList{},
			},
			{
				Use:         "describe",
				Display:     "profile describe",
				Description: "Display the settings of the current profile",
				Command:     &profile.CommandDescribe{},
			},
			{
				Use:         "set",
				Display:     "profile set",
				Description: "Save the default app info of the current profile",
				Command:     &profile.CommandSet{},
			},
		},
	}
)
