package glean

import (
	"runtime"
	"time"
)

// SDKBuild is the build identifier reported as the telemetry sdk build
var SDKBuild = "glean-events dev"

// fields required by the Glean schema which carry no meaning in a server context
const (
	unknownField = "Unknown"

	timeLayout = "2006-01-02T15:04:05.000Z"
)

// ClientInfo is the client_info section of a Glean ping
type ClientInfo struct {
	TelemetrySDKBuild string `json:"telemetry_sdk_build"`
	FirstRunDate      string `json:"first_run_date"`
	OS                string `json:"os"`
	OSVersion         string `json:"os_version"`
	Architecture      string `json:"architecture"`
	AppBuild          string `json:"app_build"`
	AppDisplayVersion string `json:"app_display_version"`
	AppChannel        string `json:"app_channel"`
}

func newClientInfo(app AppInfo) ClientInfo {
	return ClientInfo{
		TelemetrySDKBuild: SDKBuild,
		FirstRunDate:      unknownField,
		OS:                osName(runtime.GOOS),
		OSVersion:         osVersion(),
		Architecture:      unknownField,
		AppBuild:          unknownField,
		AppDisplayVersion: app.DisplayVersion,
		AppChannel:        app.Channel,
	}
}

// PingInfo is the ping_info section of a Glean ping
type PingInfo struct {
	Seq       int    `json:"seq"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// seq is not tracked across calls, server pings always report 0
func newPingInfo(now time.Time) PingInfo {
	ts := formatTime(now)
	return PingInfo{
		Seq:       0,
		StartTime: ts,
		EndTime:   ts,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func osName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "OS X"
	case "windows":
		return "Windows"
	case "solaris", "illumos":
		return "Solaris"
	case "freebsd", "netbsd", "openbsd", "dragonfly":
		return "BSD"
	}
	return goos
}
