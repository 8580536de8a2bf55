package record

import (
	"bytes"
	"testing"

	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/glean"
	"github.com/gleanserver/glean-events/internal/utils/test/mock"

	"github.com/stretchr/testify/assert"
)

func TestRecordMastodonActionHandler(t *testing.T) {
	t.Run("should write the mastodon action to the output stream", func(t *testing.T) {
		out, ui := mock.NewUI()
		stdout := new(bytes.Buffer)

		cmd := &CommandMastodonAction{mastodonActionInputs{
			appInputs: testApp,
			Action: glean.Action{
				AccountID:  "109",
				Controller: "Api::V1::StatusesController",
				Method:     "POST",
				Path:       "/api/v1/statuses",
				StatusCode: "200",
			},
		}}

		assert.NoError(t, cmd.Handler(mock.NewProfile(t), ui, cli.Streams{Out: stdout}))
		assert.Equal(t, "01:23:45 UTC INFO  Recorded mastodon action POST /api/v1/statuses for my-app\n", out.String())

		var envelope glean.ActionEnvelope
		line := decodeLine(t, stdout.Bytes(), &envelope)

		assert.Equal(t, glean.LoggerMastodonAction, line.Logger)
		assert.Equal(t, glean.DocumentTypeMastodonAction, line.Fields.DocumentType)
		assert.Equal(t, map[string]string{
			glean.MetricActionAccountID:  "109",
			glean.MetricActionController: "Api::V1::StatusesController",
			glean.MetricActionMethod:     "POST",
			glean.MetricActionPath:       "/api/v1/statuses",
			glean.MetricActionStatusCode: "200",
			glean.MetricActionUserID:     "",
		}, envelope.Metrics.String)
	})

	t.Run("should fail when the app channel is missing", func(t *testing.T) {
		_, ui := mock.NewUI()
		stdout := new(bytes.Buffer)

		cmd := &CommandMastodonAction{mastodonActionInputs{
			appInputs: appInputs{AppInfo: glean.AppInfo{ApplicationID: "my-app", DisplayVersion: "1.2.3"}},
		}}

		err := cmd.Handler(mock.NewProfile(t), ui, cli.Streams{Out: stdout})
		assert.Equal(t, glean.ErrMissingField{Field: "app_channel"}, err)
		assert.Equal(t, "", stdout.String())
	})
}
