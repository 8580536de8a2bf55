package record

import (
	"github.com/gleanserver/glean-events/internal/cli"
	"github.com/gleanserver/glean-events/internal/glean"
	"github.com/gleanserver/glean-events/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// appInputs identify the application and the request a ping is recorded for
type appInputs struct {
	glean.AppInfo
	glean.RequestInfo
}

func (i *appInputs) flags(fs *pflag.FlagSet) {
	fs.StringVar(&i.ApplicationID, flagAppID, "", flagAppIDUsage)
	fs.StringVar(&i.DisplayVersion, flagAppVersion, "", flagAppVersionUsage)
	fs.StringVar(&i.Channel, flagAppChannel, "", flagAppChannelUsage)
	fs.StringVar(&i.UserAgent, flagUserAgent, "", flagUserAgentUsage)
	fs.StringVar(&i.IPAddress, flagIPAddress, "", flagIPAddressUsage)
}

// Resolve falls back to the profile app info and prompts for what is still missing.
// With auto confirm set nothing is prompted and missing fields fail the record.
func (i *appInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	defaults := profile.AppInfo()

	for _, field := range []struct {
		value    *string
		fallback string
		message  string
	}{
		{&i.ApplicationID, defaults.ApplicationID, "Application ID"},
		{&i.DisplayVersion, defaults.DisplayVersion, "Application Version"},
		{&i.Channel, defaults.Channel, "Application Channel"},
	} {
		if *field.value != "" {
			continue
		}
		if field.fallback != "" {
			*field.value = field.fallback
			continue
		}
		if ui.AutoConfirm() {
			continue
		}
		if err := ui.AskOne(&survey.Input{Message: field.message}, field.value, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	return nil
}
