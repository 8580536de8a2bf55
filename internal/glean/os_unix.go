//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package glean

import (
	"regexp"

	"golang.org/x/sys/unix"
)

var releasePattern = regexp.MustCompile(`\d{1,2}\.?\d{0,2}\.?\d{0,3}`)

func osVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return unknownField
	}
	return parseRelease(unix.ByteSliceToString(uts.Release[:]))
}

func parseRelease(release string) string {
	if version := releasePattern.FindString(release); version != "" {
		return version
	}
	return unknownField
}
