package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to record Glean server events as mozlog log lines",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Record))
	cmd.AddCommand(factory.Build(commands.Validate))
	cmd.AddCommand(factory.Build(commands.Profile))

	os.Exit(factory.Run(cmd))
}
