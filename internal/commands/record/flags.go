package record

const (
	flagAppID      = "app-id"
	flagAppIDUsage = "the Glean application id, used as the document namespace"

	flagAppVersion      = "app-version"
	flagAppVersionUsage = "the application display version"

	flagAppChannel      = "app-channel"
	flagAppChannelUsage = "the application channel, e.g. production or staging"

	flagUserAgent      = "user-agent"
	flagUserAgentUsage = "the user agent of the request being recorded"

	flagIPAddress      = "ip-address"
	flagIPAddressUsage = "the ip address of the request being recorded"

	flagEvent      = "event"
	flagEventShort = "e"
	flagEventUsage = "the event identifier, formatted as category.name"

	flagExtra      = "extra"
	flagExtraUsage = "an event extra, formatted as key=value (repeatable)"

	flagMetricsFile      = "metrics-file"
	flagMetricsFileUsage = "a metrics.yaml file declaring the event (repeatable)"

	flagAccountID      = "account-id"
	flagAccountIDUsage = "the account id associated with the action"

	flagController      = "controller"
	flagControllerUsage = "the controller managing the request"

	flagMethod      = "method"
	flagMethodUsage = "the API method used for the request"

	flagPath      = "path"
	flagPathUsage = "the API path requested"

	flagStatusCode      = "status-code"
	flagStatusCodeUsage = "the API status code returned in the response"

	flagUserID      = "user-id"
	flagUserIDUsage = "the id of a user local to the instance"
)
