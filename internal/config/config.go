// Package config resolves the settings a ffmpegctl invocation runs with:
// the data directory holding managed installs and any override of the
// platform's default download source.
//
// Precedence is explicit flag values, then environment variables (with an
// optional .env file loaded into the environment), then the platform
// defaults baked into the manager.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/blackwell-systems/ffmpegctl/internal/ffmpeg"
	"github.com/blackwell-systems/ffmpegctl/internal/platform"
)

// Environment variables recognized by ffmpegctl.
const (
	EnvDataDir        = "FFMPEGCTL_DATA_DIR"
	EnvDownloadURL    = "FFMPEGCTL_DOWNLOAD_URL"
	EnvExecutablePath = "FFMPEGCTL_EXECUTABLE_PATH"
)

// appDirName is the directory created under the user config dir when no
// data directory is specified.
const appDirName = "ffmpegctl"

// LoadDotenv loads a .env file from the working directory into the
// environment, if one exists. Variables already set in the environment are
// not overridden.
func LoadDotenv() {
	_ = godotenv.Load()
}

// DataDir returns the application data directory: the flag value if set,
// else $FFMPEGCTL_DATA_DIR, else a per-user default under the OS config
// directory.
func DataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return env, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// DownloadOverrides combines flag values and environment variables into a
// download config. It returns nil when nothing is overridden, letting the
// manager use the platform default. When only one field is overridden the
// other is filled from the profile, so a custom mirror URL does not force
// the caller to restate the default archive layout.
func DownloadOverrides(url, execPath string, prof platform.Profile) *ffmpeg.DownloadConfig {
	if url == "" {
		url = os.Getenv(EnvDownloadURL)
	}
	if execPath == "" {
		execPath = os.Getenv(EnvExecutablePath)
	}
	if url == "" && execPath == "" {
		return nil
	}

	if url == "" {
		url = prof.DownloadURL
	}
	if execPath == "" {
		execPath = prof.ArchiveExecPath
	}
	return &ffmpeg.DownloadConfig{URL: url, ExecutablePath: execPath}
}
