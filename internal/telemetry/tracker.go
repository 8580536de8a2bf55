package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gleanserver/glean-events/internal/glean"

	"github.com/spf13/afero"
)

// Tracker logs events
type Tracker interface {
	Track(event event)
	Close()
}

type noopTracker struct{}

func (tracker *noopTracker) Track(event event) {}

func (tracker *noopTracker) Close() {}

type stdoutTracker struct {
	w io.Writer
}

func (tracker *stdoutTracker) Track(event event) {
	fmt.Fprintf(tracker.w, "%s UTC TELEM %s: %s%v\n",
		event.time.In(time.UTC).Format("15:04:05"),
		event.command,
		event.eventType,
		event.data,
	)
}

func (tracker *stdoutTracker) Close() {}

// set of glean tracker constants
const (
	gleanAppID   = "glean-events-cli"
	gleanChannel = "release"

	extraCommand     = "command"
	extraEventID     = "event_id"
	extraExecutionID = "execution_id"
)

// gleanTracker records cli events as glean server events appended to a log file
type gleanTracker struct {
	fs     afero.Fs
	path   string
	file   afero.File
	logger *glean.Logger
}

func newGleanTracker(fs afero.Fs, path string) *gleanTracker {
	return &gleanTracker{fs: fs, path: path}
}

// Track records the event, telemetry failures never fail a command
func (tracker *gleanTracker) Track(event event) {
	_ = tracker.track(event)
}

func (tracker *gleanTracker) track(event event) error {
	if tracker.logger == nil {
		if err := tracker.open(); err != nil {
			return err
		}
	}

	extra := map[string]string{
		extraCommand:     event.command,
		extraEventID:     event.id,
		extraExecutionID: event.executionID,
	}
	for _, data := range event.data {
		extra[string(data.Key)] = fmt.Sprint(data.Value)
	}

	recorder, err := glean.NewServerEvent(
		glean.AppInfo{ApplicationID: gleanAppID, DisplayVersion: event.version, Channel: gleanChannel},
		glean.RequestInfo{},
		event.eventType.gleanName(),
		extra,
		glean.WithLogger(tracker.logger),
	)
	if err != nil {
		return err
	}
	return recorder.Record()
}

func (tracker *gleanTracker) open() error {
	if err := tracker.fs.MkdirAll(filepath.Dir(tracker.path), 0700); err != nil {
		return err
	}

	f, err := tracker.fs.OpenFile(tracker.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}

	tracker.file = f
	tracker.logger = glean.NewLogger(f)
	return nil
}

func (tracker *gleanTracker) Close() {
	if tracker.file != nil {
		tracker.file.Close()
	}
}
