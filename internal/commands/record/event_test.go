package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/glean"
	"github.com/gleanserver/glean-events/internal/utils/test/mock"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMetricsFile = "/metrics.yaml"

const testMetrics = `---
$schema: moz://mozilla.org/schemas/glean/metrics/2-0-0

backend:
  test_event:
    type: event
    description: Test event
    expires: never
    extra_keys:
      event_field_string:
        description: A string extra field
        type: string
  other_event:
    type: event
    description: Another test event
    expires: never

metric:
  name:
    type: string
    description: Test string metric
    expires: never
`

var testApp = appInputs{
	AppInfo:     glean.AppInfo{ApplicationID: "my-app", DisplayVersion: "1.2.3", Channel: "production"},
	RequestInfo: glean.RequestInfo{UserAgent: "curl/8.0", IPAddress: "127.0.0.1"},
}

func decodeLine(t *testing.T, data []byte, envelope interface{}) glean.LogLine {
	t.Helper()

	var line glean.LogLine
	require.NoError(t, json.Unmarshal(data, &line))
	require.NoError(t, json.Unmarshal([]byte(line.Fields.Payload), envelope))
	return line
}

func TestRecordEventHandler(t *testing.T) {
	t.Run("should write the server event to the output stream", func(t *testing.T) {
		out, ui := mock.NewUI()
		stdout := new(bytes.Buffer)

		cmd := &CommandEvent{eventInputs{
			appInputs: testApp,
			Event:     "backend.test_event",
			Extra:     map[string]string{"event_field_string": "foo"},
		}}

		assert.NoError(t, cmd.Handler(mock.NewProfile(t), ui, cli.Streams{Out: stdout}))
		assert.Equal(t, "01:23:45 UTC INFO  Recorded event backend.test_event for my-app\n", out.String())

		var envelope glean.EventEnvelope
		line := decodeLine(t, stdout.Bytes(), &envelope)

		assert.Equal(t, glean.LoggerEvents, line.Logger)
		assert.Equal(t, glean.MozlogType, line.Type)
		assert.Equal(t, "my-app", line.Fields.DocumentNamespace)
		assert.Equal(t, glean.DocumentTypeEvents, line.Fields.DocumentType)
		assert.Equal(t, "curl/8.0", line.Fields.UserAgent)
		assert.Equal(t, "127.0.0.1", line.Fields.IPAddress)

		assert.Equal(t, "backend.test_event", envelope.Event)
		assert.Equal(t, map[string]string{"event_field_string": "foo"}, envelope.EventExtra)
		assert.Equal(t, "1.2.3", envelope.ClientInfo.AppDisplayVersion)
		assert.Equal(t, "production", envelope.ClientInfo.AppChannel)
	})

	t.Run("should fail when the app id is missing", func(t *testing.T) {
		_, ui := mock.NewUI()
		stdout := new(bytes.Buffer)

		cmd := &CommandEvent{eventInputs{Event: "backend.test_event"}}

		err := cmd.Handler(mock.NewProfile(t), ui, cli.Streams{Out: stdout})
		assert.Equal(t, glean.ErrMissingField{Field: "application_id"}, err)
		assert.Equal(t, "", stdout.String())
	})

	t.Run("with a metrics file", func(t *testing.T) {
		setup := func(t *testing.T, inputs eventInputs) (*CommandEvent, *cli.Profile) {
			t.Helper()

			profile := mock.NewProfile(t)
			require.NoError(t, afero.WriteFile(profile.Fs(), testMetricsFile, []byte(testMetrics), 0644))

			inputs.appInputs = testApp
			inputs.MetricsFiles = []string{testMetricsFile}

			cmd := &CommandEvent{inputs}
			ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, new(bytes.Buffer))
			require.NoError(t, cmd.inputs.Resolve(profile, ui))
			return cmd, profile
		}

		t.Run("should warn about unsupported metrics and undeclared extras", func(t *testing.T) {
			cmd, profile := setup(t, eventInputs{
				Event: "backend.test_event",
				Extra: map[string]string{"event_field_string": "foo", "unknown": "bar"},
			})

			out, ui := mock.NewUI()
			stdout := new(bytes.Buffer)

			assert.NoError(t, cmd.Handler(profile, ui, cli.Streams{Out: stdout}))
			assert.Equal(t, `01:23:45 UTC WARN  Ignoring unsupported metric type: string:metric.name
01:23:45 UTC WARN  Event backend.test_event does not declare extra keys: unknown
01:23:45 UTC INFO  Recorded event backend.test_event for my-app
`, out.String())

			var envelope glean.EventEnvelope
			decodeLine(t, stdout.Bytes(), &envelope)
			assert.Equal(t, map[string]string{"event_field_string": "foo", "unknown": "bar"}, envelope.EventExtra)
		})

		t.Run("should fail when the event is not declared", func(t *testing.T) {
			cmd, profile := setup(t, eventInputs{Event: "backend.missing_event"})

			_, ui := mock.NewUI()
			stdout := new(bytes.Buffer)

			err := cmd.Handler(profile, ui, cli.Streams{Out: stdout})
			assert.EqualError(t, err, "event backend.missing_event is not defined in /metrics.yaml")
			assert.Equal(t, "", stdout.String())

			var suggester cli.ErrSuggester
			require.True(t, errors.As(err, &suggester), "error must provide suggestions")
			assert.Equal(t, []interface{}{"--event backend.other_event", "--event backend.test_event"}, suggester.Suggestions())
		})
	})
}

func TestRecordEventInputs(t *testing.T) {
	t.Run("should fail when a metrics file cannot be read", func(t *testing.T) {
		_, ui := mock.NewUI()

		inputs := eventInputs{appInputs: testApp, Event: "backend.test_event", MetricsFiles: []string{"/missing.yaml"}}
		err := inputs.Resolve(mock.NewProfile(t), ui)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read metrics file")
	})

	t.Run("should prompt for the event with the declared events as options", func(t *testing.T) {
		console, _, ui, consoleErr := mock.NewVT10XConsoleWithOptions(mock.UIOptions{}, new(bytes.Buffer))
		require.NoError(t, consoleErr)
		defer console.Close()

		profile := mock.NewProfile(t)
		require.NoError(t, afero.WriteFile(profile.Fs(), testMetricsFile, []byte(testMetrics), 0644))

		doneCh := make(chan (struct{}))
		go func() {
			defer close(doneCh)
			console.ExpectString("Event")
			console.ExpectString("backend.other_event")
			console.ExpectString("backend.test_event")
			console.Send(string(terminal.KeyArrowDown))
			console.SendLine("")
			console.ExpectEOF()
		}()

		inputs := eventInputs{appInputs: testApp, MetricsFiles: []string{testMetricsFile}}
		assert.NoError(t, inputs.Resolve(profile, ui))

		console.Tty().Close() // flush the writers
		<-doneCh              // wait for procedure to complete

		assert.Equal(t, "backend.test_event", inputs.Event)
	})

	t.Run("should prompt for the event without metrics files", func(t *testing.T) {
		console, _, ui, consoleErr := mock.NewVT10XConsoleWithOptions(mock.UIOptions{}, new(bytes.Buffer))
		require.NoError(t, consoleErr)
		defer console.Close()

		doneCh := make(chan (struct{}))
		go func() {
			defer close(doneCh)
			console.ExpectString("Event")
			console.SendLine("backend.test_event")
			console.ExpectEOF()
		}()

		inputs := eventInputs{appInputs: testApp}
		assert.NoError(t, inputs.Resolve(mock.NewProfile(t), ui))

		console.Tty().Close() // flush the writers
		<-doneCh              // wait for procedure to complete

		assert.Equal(t, "backend.test_event", inputs.Event)
	})
}
