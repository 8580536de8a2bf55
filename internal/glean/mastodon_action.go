package glean

import (
	"time"
)

// set of mastodon action constants
const (
	DocumentTypeMastodonAction = "mastodon-action"
	LoggerMastodonAction       = "mastodon-action-glean"
)

// set of mastodon action string metric names
const (
	MetricActionAccountID  = "action.account_id"
	MetricActionController = "action.controller"
	MetricActionMethod     = "action.method"
	MetricActionPath       = "action.path"
	MetricActionStatusCode = "action.status_code"
	MetricActionUserID     = "action.user_id"
)

// Action describes a single Mastodon API request
type Action struct {
	AccountID  string // account id associated with the action, may be from another instance
	Controller string // application controller class managing the request
	Method     string // API method used for the request
	Path       string // API path requested
	StatusCode string // API status code returned in the response
	UserID     string // id of a user local to the instance
}

func (a Action) metrics() map[string]string {
	return map[string]string{
		MetricActionAccountID:  a.AccountID,
		MetricActionController: a.Controller,
		MetricActionMethod:     a.Method,
		MetricActionPath:       a.Path,
		MetricActionStatusCode: a.StatusCode,
		MetricActionUserID:     a.UserID,
	}
}

// ActionMetrics holds the metrics of a mastodon-action ping
type ActionMetrics struct {
	String map[string]string `json:"string"`
}

// ActionEnvelope is the payload of a mastodon-action ping
type ActionEnvelope struct {
	ClientInfo ClientInfo    `json:"client_info"`
	PingInfo   PingInfo      `json:"ping_info"`
	Metrics    ActionMetrics `json:"metrics"`
}

// MastodonAction records a Mastodon API request
type MastodonAction struct {
	recorder
	action Action
}

// NewMastodonAction creates a new MastodonAction
func NewMastodonAction(app AppInfo, req RequestInfo, action Action, opts ...Option) (*MastodonAction, error) {
	r, err := newRecorder(app, req, opts)
	if err != nil {
		return nil, err
	}
	return &MastodonAction{r, action}, nil
}

// Record emits the action as one log line
func (a *MastodonAction) Record() error {
	var fields []field
	for k, v := range a.action.metrics() {
		fields = append(fields, field{"metrics.string." + k, v})
	}

	return a.record(DocumentTypeMastodonAction, LoggerMastodonAction, fields, func(now time.Time) interface{} {
		return ActionEnvelope{
			ClientInfo: newClientInfo(a.app),
			PingInfo:   newPingInfo(now),
			Metrics:    ActionMetrics{a.action.metrics()},
		}
	})
}
