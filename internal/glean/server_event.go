package glean

import (
	"time"
)

// set of server event constants
const (
	DocumentTypeEvents = "events"
	LoggerEvents       = "events-glean"
)

// EventEnvelope is the payload of an events ping
type EventEnvelope struct {
	ClientInfo     ClientInfo        `json:"client_info"`
	PingInfo       PingInfo          `json:"ping_info"`
	Event          string            `json:"event"`
	EventTimestamp string            `json:"event_timestamp"`
	EventExtra     map[string]string `json:"event_extra"`
}

// ServerEvent records a named event with free-form extras
type ServerEvent struct {
	recorder
	name  string
	extra map[string]string
}

// NewServerEvent creates a new ServerEvent
// The event name is the dotted category.name identifier of the event
func NewServerEvent(app AppInfo, req RequestInfo, name string, extra map[string]string, opts ...Option) (*ServerEvent, error) {
	r, err := newRecorder(app, req, opts)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrMissingField{"event"}
	}

	extraCopy := make(map[string]string, len(extra))
	for k, v := range extra {
		extraCopy[k] = v
	}

	return &ServerEvent{r, name, extraCopy}, nil
}

// Name returns the event name
func (e *ServerEvent) Name() string { return e.name }

// Record emits the event as one log line
func (e *ServerEvent) Record() error {
	fields := []field{{"event", e.name}}
	for k, v := range e.extra {
		fields = append(fields, field{"event_extra", k}, field{"event_extra." + k, v})
	}

	return e.record(DocumentTypeEvents, LoggerEvents, fields, func(now time.Time) interface{} {
		pingInfo := newPingInfo(now)
		return EventEnvelope{
			ClientInfo:     newClientInfo(e.app),
			PingInfo:       pingInfo,
			Event:          e.name,
			EventTimestamp: pingInfo.StartTime,
			EventExtra:     e.extra,
		}
	})
}
