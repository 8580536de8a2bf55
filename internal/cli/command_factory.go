package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gleanserver/glean-events/internal/telemetry"
	"github.com/gleanserver/glean-events/internal/terminal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const msgSuggestions = "Try the following"

// CommandFactory is a command factory
type CommandFactory struct {
	profile          *Profile
	ui               terminal.UI
	uiConfig         terminal.UIConfig
	inReader         io.Reader
	outWriter        io.Writer
	errWriter        io.Writer
	errLogger        *log.Logger
	telemetryService *telemetry.Service
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	profile, profileErr := NewDefaultProfile()
	if profileErr != nil {
		return nil, profileErr
	}
	return NewCommandFactoryWithProfile(profile, os.Stdin, os.Stdout, os.Stderr), nil
}

// NewCommandFactoryWithProfile creates a new command factory with the provided profile and streams
func NewCommandFactoryWithProfile(profile *Profile, in io.Reader, out, err io.Writer) *CommandFactory {
	return &CommandFactory{
		profile:   profile,
		inReader:  in,
		outWriter: out,
		errWriter: err,
		errLogger: log.New(err, "UTC ERROR ", log.Ltime|log.Lmsgprefix),
	}
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command == nil {
		return &cmd
	}

	if command, ok := command.Command.(CommandFlags); ok {
		fs := cmd.Flags()
		fs.SortFlags = false // ensures command flags are added unsorted
		command.Flags(fs)
	}

	cmd.PersistentPreRunE = func(c *cobra.Command, a []string) error {
		factory.ensureUI()

		if err := factory.profile.Load(); err != nil {
			return err
		}
		if err := factory.profile.resolveFlags(); err != nil {
			return err
		}

		factory.telemetryService = telemetry.NewService(telemetry.Config{
			Mode:    factory.profile.telemetryMode,
			Fs:      factory.profile.Fs(),
			Dir:     factory.profile.Dir(),
			Out:     factory.errWriter,
			Command: display,
			Version: Version,
		})
		return nil
	}

	if command, ok := command.Command.(CommandInputs); ok {
		cmd.PreRunE = func(c *cobra.Command, a []string) error {
			if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
				return fmt.Errorf("%s setup failed: %w", display, errDisableUsage{err})
			}
			return nil
		}
	}

	cmd.RunE = func(c *cobra.Command, a []string) error {
		factory.telemetryService.TrackEvent(telemetry.EventTypeCommandStart)

		err := command.Command.Handler(factory.profile, factory.ui, Streams{
			In:  factory.inReader,
			Out: factory.outWriter,
		})
		if err != nil {
			factory.telemetryService.TrackEvent(
				telemetry.EventTypeCommandError,
				telemetry.EventData{Key: telemetry.EventDataKeyError, Value: err},
			)
			return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
		}

		factory.telemetryService.TrackEvent(telemetry.EventTypeCommandComplete)
		return nil
	}

	return &cmd
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.telemetryService != nil {
		factory.telemetryService.Close()
	}
}

// Run executes the command and returns the process exit code
func (factory *CommandFactory) Run(cmd *cobra.Command) int {
	defer factory.Close()

	cmd.SetIn(factory.inReader)
	cmd.SetOut(factory.errWriter) // help and usage text must not mix with glean output
	cmd.SetErr(factory.errWriter)

	if err := cmd.Execute(); err != nil {
		if !usageDisabled(err) {
			cmd.PrintErrln(cmd.UsageString())
		}

		if factory.ui == nil {
			factory.errLogger.Println(err)
			return 1
		}

		logs := []terminal.Log{terminal.NewErrorLog(err)}
		if s := suggestions(err); len(s) > 0 {
			logs = append(logs, terminal.NewListLog(msgSuggestions, s...))
		}

		if printErr := factory.ui.Print(logs...); printErr != nil {
			factory.errLogger.Println(err)
		}
		return 1
	}
	return 0
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, flagProfile, DefaultProfile, flagProfileUsage)
	fs.Var(&factory.profile.telemetryMode, telemetry.FlagMode, telemetry.FlagModeUsage)

	// ui flags
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)
}

// ensureUI writes info logs to the error stream so stdout carries only glean lines
func (factory *CommandFactory) ensureUI() {
	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.errWriter, factory.errWriter)
	}
}
