package terminal

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	AutoConfirm() bool
	AskOne(prompt survey.Prompt, answer interface{}, opts ...survey.AskOpt) error
	Print(logs ...Log) error
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	noColor := config.DisableColors
	if config.OutputFormat == OutputFormatJSON {
		noColor = true
	}
	color.NoColor = noColor

	return &ui{
		config: config,
		in:     in,
		out:    out,
		err:    err,
	}
}

type ui struct {
	config UIConfig
	in     io.Reader
	out    io.Writer
	err    io.Writer
}

func (ui *ui) AutoConfirm() bool {
	return ui.config.AutoConfirm
}

func (ui *ui) AskOne(prompt survey.Prompt, answer interface{}, opts ...survey.AskOpt) error {
	stdio := ui.toStdio()
	return survey.AskOne(prompt, answer, append(opts, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))...)
}

// Print writes info logs to the output writer and everything else to the error writer
func (ui *ui) Print(logs ...Log) error {
	for _, log := range logs {
		output, outputErr := log.Print(ui.config.OutputFormat)
		if outputErr != nil {
			return outputErr
		}

		writer := ui.err
		if log.Level == LogLevelInfo {
			writer = ui.out
		}

		if _, err := fmt.Fprintln(writer, output); err != nil {
			return err
		}
	}
	return nil
}

func (ui *ui) toStdio() terminal.Stdio {
	in, inOK := ui.in.(terminal.FileReader)
	if !inOK {
		in = noopFdReader{ui.in}
	}
	out, outOK := ui.out.(terminal.FileWriter)
	if !outOK {
		out = noopFdWriter{ui.out}
	}
	return terminal.Stdio{
		In:  in,
		Out: out,
		Err: ui.err,
	}
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr {
	return 0
}

type noopFdWriter struct {
	io.Writer
}

func (r noopFdWriter) Fd() uintptr {
	return 0
}
