package glean

import (
	"time"
)

// Recorder records a single Glean server event
type Recorder interface {
	Record() error
}

// Option configures an event builder
type Option func(r *recorder)

// WithLogger sets the Logger events are emitted through
func WithLogger(logger *Logger) Option {
	return func(r *recorder) { r.logger = logger }
}

type recorder struct {
	app    AppInfo
	req    RequestInfo
	logger *Logger
}

func newRecorder(app AppInfo, req RequestInfo, opts []Option) (recorder, error) {
	if err := app.validate(); err != nil {
		return recorder{}, err
	}

	r := recorder{app: app, req: req}
	for _, opt := range opts {
		opt(&r)
	}
	if r.logger == nil {
		r.logger = NewStdoutLogger()
	}
	return r, nil
}

func (r recorder) fields() []field {
	return []field{
		{"application_id", r.app.ApplicationID},
		{"app_display_version", r.app.DisplayVersion},
		{"app_channel", r.app.Channel},
		{"user_agent", r.req.UserAgent},
		{"ip_address", r.req.IPAddress},
	}
}

// record samples the clock once and hands the built payload to the logger
// Nothing is written when any field is not valid UTF-8
func (r recorder) record(documentType, loggerName string, fields []field, build func(now time.Time) interface{}) error {
	if err := checkUTF8(append(r.fields(), fields...)); err != nil {
		return err
	}

	now := r.logger.now()

	ping, err := newPing(r.app, r.req, documentType, build(now))
	if err != nil {
		return err
	}
	return r.logger.Emit(loggerName, now, ping)
}
