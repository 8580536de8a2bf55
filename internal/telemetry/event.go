package telemetry

import (
	"time"
)

type event struct {
	id          string
	eventType   EventType
	time        time.Time
	executionID string
	command     string
	version     string
	data        []EventData
}

// EventData holds additional event information
type EventData struct {
	Key   EventDataKey
	Value interface{}
}

// EventType is a cli event type
type EventType string

// set of supported cli event types
const (
	EventTypeCommandStart    EventType = "COMMAND_START"
	EventTypeCommandComplete EventType = "COMMAND_COMPLETE"
	EventTypeCommandError    EventType = "COMMAND_ERROR"
)

// gleanName is the Glean category.name identifier of the event type
func (et EventType) gleanName() string {
	switch et {
	case EventTypeCommandStart:
		return "cli.command_start"
	case EventTypeCommandComplete:
		return "cli.command_complete"
	case EventTypeCommandError:
		return "cli.command_error"
	}
	return "cli.unknown"
}

// EventDataKey used to pass data into the event
type EventDataKey string

// set of event data keys
const (
	EventDataKeyError EventDataKey = "err"
)
