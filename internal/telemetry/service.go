package telemetry

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// LogFile is the name of the file glean telemetry is appended to
const LogFile = "telemetry.log"

// Config is the telemetry service config
type Config struct {
	Mode    Mode
	Fs      afero.Fs
	Dir     string    // the directory LogFile is written to
	Out     io.Writer // where stdout mode prints, defaults to os.Stderr
	Command string
	Version string
}

// Service tracks telemetry events
type Service struct {
	command     string
	version     string
	executionID string
	tracker     Tracker
}

// NewService creates a new telemetry service
func NewService(config Config) *Service {
	service := Service{
		command:     config.Command,
		version:     config.Version,
		executionID: uuid.New().String(),
	}

	switch config.Mode {
	case ModeOn:
		service.tracker = newGleanTracker(config.Fs, filepath.Join(config.Dir, LogFile))
	case ModeStdout:
		out := config.Out
		if out == nil {
			out = os.Stderr
		}
		service.tracker = &stdoutTracker{out}
	default:
		service.tracker = &noopTracker{}
	}

	return &service
}

// TrackEvent tracks events
func (service *Service) TrackEvent(eventType EventType, data ...EventData) {
	service.tracker.Track(event{
		id:          uuid.New().String(),
		eventType:   eventType,
		time:        time.Now(),
		executionID: service.executionID,
		command:     service.command,
		version:     service.version,
		data:        data,
	})
}

// Close shuts down the Service
func (service *Service) Close() {
	service.tracker.Close()
}
