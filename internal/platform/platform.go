// Package platform resolves the running OS to a supported FFmpeg platform
// and provides the default distribution descriptor and install paths for it.
//
// Resolution is a pure lookup keyed by GOOS; unsupported systems get a
// tagged error instead of a build failure, so the same binary can report
// "unsupported platform" at runtime on anything outside the table.
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned when the running OS has no platform profile.
var ErrUnsupported = errors.New("unsupported platform")

// Platform identifies a supported operating system.
type Platform string

const (
	MacOS   Platform = "macos"
	Windows Platform = "windows"
	Linux   Platform = "linux"
)

// String returns the platform identifier used in install paths.
func (p Platform) String() string {
	return string(p)
}

// Profile describes a supported platform: where to fetch its FFmpeg build,
// where the executable lives inside that archive, and what the installed
// executable file is called.
type Profile struct {
	ID Platform

	// DownloadURL is the default source for this platform's build.
	DownloadURL string

	// ArchiveExecPath is the relative path of the executable inside the
	// downloaded archive. Matching against it is suffix/substring based,
	// so a leading versioned directory in the archive is tolerated.
	ArchiveExecPath string

	// ExecName is the installed executable filename.
	ExecName string
}

// profiles maps GOOS values to their platform profile.
var profiles = map[string]Profile{
	"darwin": {
		ID:              MacOS,
		DownloadURL:     "https://evermeet.cx/ffmpeg/ffmpeg-8.0.zip",
		ArchiveExecPath: "ffmpeg",
		ExecName:        "ffmpeg",
	},
	"windows": {
		ID:              Windows,
		DownloadURL:     "https://github.com/BtbN/FFmpeg-Builds/releases/download/latest/ffmpeg-n8.0-latest-win64-gpl-8.0.zip",
		ArchiveExecPath: "bin/ffmpeg.exe",
		ExecName:        "ffmpeg.exe",
	},
	"linux": {
		ID:              Linux,
		DownloadURL:     "https://johnvansickle.com/ffmpeg/releases/ffmpeg-release-amd64-static.tar.xz",
		ArchiveExecPath: "ffmpeg",
		ExecName:        "ffmpeg",
	},
}

// Resolve returns the profile for the running OS.
func Resolve() (Profile, error) {
	return Lookup(runtime.GOOS)
}

// Lookup returns the profile for the given GOOS value. It exists separately
// from Resolve so that callers (and tests) can resolve profiles for systems
// other than the one they are running on.
func Lookup(goos string) (Profile, error) {
	p, ok := profiles[goos]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnsupported, goos)
	}
	return p, nil
}
