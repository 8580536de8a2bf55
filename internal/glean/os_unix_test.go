//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package glean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRelease(t *testing.T) {
	for _, tc := range []struct {
		release  string
		expected string
	}{
		{"5.15.0-91-generic", "5.15.0"},
		{"22.6.0", "22.6.0"},
		{"13.2-RELEASE", "13.2"},
		{"unversioned", "Unknown"},
	} {
		t.Run(tc.release, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseRelease(tc.release))
		})
	}
}
