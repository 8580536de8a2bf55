package profile

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/terminal"

	"github.com/spf13/afero"
)

// CommandList is the `profile list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI, streams cli.Streams) error {
	paths, err := afero.Glob(profile.Fs(), filepath.Join(profile.Dir(), "*.yaml"))
	if err != nil {
		return err
	}

	names := make([]string, 0, len(paths))
	for _, path := range paths {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".yaml"))
	}
	sort.Strings(names)

	data := make([]interface{}, len(names))
	for i, name := range names {
		data[i] = name
	}

	return ui.Print(terminal.NewListLog(fmt.Sprintf("Found %d profile(s)", len(names)), data...))
}
