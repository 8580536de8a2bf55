package glean

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"
)

// MozlogType tags the log lines the data pipeline forwards for ingestion
const MozlogType = "glean-server-event"

const (
	severityInfo  = "INFO"
	severityWidth = 5
)

var (
	errNoWriter = errors.New("writer not specified")
)

// LogLine is a single mozlog formatted line
type LogLine struct {
	Timestamp string
	Logger    string
	Type      string
	Severity  string
	Pid       string
	Fields    Ping
}

// Logger writes pings as mozlog lines, one line per ping
//
// Every line is marshaled in full before it is written with a single call to the
// underlying writer, so a failed encode never produces partial output.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
	pid int
}

// LoggerOption configures a Logger
type LoggerOption func(l *Logger)

// WithClock sets the clock used to timestamp both the log line and the ping
func WithClock(now func() time.Time) LoggerOption {
	return func(l *Logger) { l.now = now }
}

// WithPid overrides the process id reported in each line
func WithPid(pid int) LoggerOption {
	return func(l *Logger) { l.pid = pid }
}

// NewLogger creates a new Logger writing to w
// Glean ingestion expects os.Stdout; any other writer is the caller's to close
func NewLogger(w io.Writer, opts ...LoggerOption) *Logger {
	l := &Logger{
		w:   w,
		now: time.Now,
		pid: os.Getpid(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewStdoutLogger creates a new Logger writing to os.Stdout
func NewStdoutLogger(opts ...LoggerOption) *Logger {
	return NewLogger(os.Stdout, opts...)
}

// Emit wraps the ping recorded at now in a log line and writes it
func (l *Logger) Emit(name string, now time.Time, ping Ping) error {
	if l.w == nil {
		return errNoWriter
	}

	line := LogLine{
		Timestamp: strconv.FormatInt(now.Unix(), 10),
		Logger:    name,
		Type:      MozlogType,
		Severity:  fmt.Sprintf("%-*s", severityWidth, severityInfo),
		Pid:       strconv.Itoa(l.pid),
		Fields:    ping,
	}

	data, err := marshal(line)
	if err != nil {
		return fmt.Errorf("failed to serialize log line: %w", err)
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	n, err := l.w.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write log line: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("failed to write log line: %w", io.ErrShortWrite)
	}
	return nil
}
