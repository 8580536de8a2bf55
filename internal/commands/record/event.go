package record

import (
	"fmt"
	"strings"

	"github.com/gleanserver/glean-events/internal/catalog"
	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/glean"
	"github.com/gleanserver/glean-events/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// CommandEvent is the `record event` command
type CommandEvent struct {
	inputs eventInputs
}

type eventInputs struct {
	appInputs
	Event        string
	Extra        map[string]string
	MetricsFiles []string

	catalog *catalog.Catalog
}

// Flags is the command flags
func (cmd *CommandEvent) Flags(fs *pflag.FlagSet) {
	cmd.inputs.appInputs.flags(fs)
	fs.StringVarP(&cmd.inputs.Event, flagEvent, flagEventShort, "", flagEventUsage)
	fs.StringToStringVar(&cmd.inputs.Extra, flagExtra, nil, flagExtraUsage)
	fs.StringSliceVar(&cmd.inputs.MetricsFiles, flagMetricsFile, nil, flagMetricsFileUsage)
}

// Inputs is the command inputs
func (cmd *CommandEvent) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandEvent) Handler(profile *cli.Profile, ui terminal.UI, streams cli.Streams) error {
	if cmd.inputs.catalog != nil {
		if err := cmd.inputs.check(ui); err != nil {
			return err
		}
	}

	event, err := glean.NewServerEvent(
		cmd.inputs.AppInfo,
		cmd.inputs.RequestInfo,
		cmd.inputs.Event,
		cmd.inputs.Extra,
		glean.WithLogger(glean.NewLogger(streams.Out)),
	)
	if err != nil {
		return err
	}

	if err := event.Record(); err != nil {
		return err
	}
	return ui.Print(terminal.NewTextLog("Recorded event %s for %s", event.Name(), cmd.inputs.ApplicationID))
}

func (i *eventInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if err := i.appInputs.Resolve(profile, ui); err != nil {
		return err
	}

	if len(i.MetricsFiles) > 0 {
		c, err := catalog.Load(profile.Fs(), i.MetricsFiles...)
		if err != nil {
			return err
		}
		i.catalog = &c
	}

	if i.Event != "" || ui.AutoConfirm() {
		return nil
	}

	var prompt survey.Prompt = &survey.Input{Message: "Event"}
	if i.catalog != nil {
		if events := i.catalog.Events(); len(events) > 0 {
			options := make([]string, 0, len(events))
			for _, e := range events {
				options = append(options, e.Identifier())
			}
			prompt = &survey.Select{Message: "Event", Options: options}
		}
	}
	return ui.AskOne(prompt, &i.Event, survey.WithValidator(survey.Required))
}

// check verifies the event against the loaded metrics files,
// undeclared extras and unsupported metric types only warn
func (i *eventInputs) check(ui terminal.UI) error {
	var logs []terminal.Log
	for _, metric := range i.catalog.Unsupported() {
		logs = append(logs, terminal.NewWarningLog("Ignoring unsupported metric type: %s", metric))
	}

	event, ok := i.catalog.Lookup(i.Event)
	if !ok {
		err := fmt.Errorf("event %s is not defined in %s", i.Event, strings.Join(i.MetricsFiles, ", "))

		declared := i.catalog.Events()
		suggestions := make([]interface{}, len(declared))
		for n, e := range declared {
			suggestions[n] = fmt.Sprintf("--%s %s", flagEvent, e.Identifier())
		}
		return cli.NewErrWithSuggestions(err, suggestions...)
	}

	if unknown := event.UnknownExtras(i.Extra); len(unknown) > 0 {
		logs = append(logs, terminal.NewWarningLog("Event %s does not declare extra keys: %s", i.Event, strings.Join(unknown, ", ")))
	}

	if len(logs) == 0 {
		return nil
	}
	return ui.Print(logs...)
}
