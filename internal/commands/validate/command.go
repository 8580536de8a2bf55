package validate

import (
	"fmt"
	"io"

	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/pingcheck"
	"github.com/gleanserver/glean-events/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagFile      = "file"
	flagFileUsage = "the log file to validate, defaults to stdin"
)

// Command is the `validate` command
type Command struct {
	file string
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.file, flagFile, "", flagFileUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, streams cli.Streams) error {
	validator, err := pingcheck.NewValidator()
	if err != nil {
		return err
	}

	var r io.Reader = streams.In
	if cmd.file != "" {
		f, err := profile.Fs().Open(cmd.file)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var invalid []interface{}
	summary, err := validator.ValidateStream(r, func(result pingcheck.Result) {
		if !result.Valid() {
			invalid = append(invalid, describe(result))
		}
	})
	if err != nil {
		return err
	}

	logs := []terminal.Log{terminal.NewTextLog(
		"Checked %d glean server event(s): %d valid, %d invalid, %d line(s) skipped",
		summary.Checked,
		summary.Checked-summary.Invalid,
		summary.Invalid,
		summary.Skipped,
	)}
	if len(invalid) > 0 {
		logs = append(logs, terminal.NewListLog("Invalid glean server events", invalid...))
	}
	if err := ui.Print(logs...); err != nil {
		return err
	}

	if summary.Invalid > 0 {
		return fmt.Errorf("found %d invalid glean server event(s)", summary.Invalid)
	}
	return nil
}

func describe(result pingcheck.Result) string {
	if result.DocumentID == "" {
		return fmt.Sprintf("line %d: %s", result.Line, result.Err)
	}
	return fmt.Sprintf("line %d (%s %s): %s", result.Line, result.DocumentType, result.DocumentID, result.Err)
}
