package cli

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	profileDir = ".config/glean-events"
)

func homeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, profileDir), nil
}
