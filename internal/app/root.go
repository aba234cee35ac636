// Package app wires the FFmpeg lifecycle manager to the ffmpegctl command
// line. Commands here are thin dispatch glue: they resolve configuration,
// call one manager operation, and render the result. All real behavior
// lives in internal/ffmpeg.
package app

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ffmpegctl/internal/config"
	"github.com/blackwell-systems/ffmpegctl/internal/ffmpeg"
)

var (
	dataDirFlag string
	jsonFlag    bool

	// RootCmd is the root command for ffmpegctl
	RootCmd = &cobra.Command{
		Use:   "ffmpegctl",
		Short: "Manage a self-contained FFmpeg installation",
		Long: `ffmpegctl downloads, verifies, runs, and removes a managed FFmpeg binary
so that applications (and their users) never need a system-wide install.

The binary lives under a per-user data directory, one install per platform:
  <data-dir>/bin/<platform>/ffmpeg

Sources default to well-known static builds per platform and can be
overridden with flags, environment variables, or a .env file:
  FFMPEGCTL_DATA_DIR         data directory
  FFMPEGCTL_DOWNLOAD_URL     archive URL
  FFMPEGCTL_EXECUTABLE_PATH  path of the executable inside the archive

Examples:
  # Is FFmpeg installed and runnable?
  ffmpegctl check

  # Fetch the default build for this platform, with progress
  ffmpegctl download

  # Run the managed binary
  ffmpegctl exec -- -i input.mp4 output.webm

  # Delete the managed install
  ffmpegctl remove`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default: per-user config dir)")
	RootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "emit results as JSON")

	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(downloadCmd)
	RootCmd.AddCommand(execCmd)
	RootCmd.AddCommand(removeCmd)
}

// Execute runs the root command.
func Execute() error {
	config.LoadDotenv()
	return RootCmd.Execute()
}

// newManager builds the lifecycle manager from the global flags.
func newManager(opts ...ffmpeg.Option) (*ffmpeg.Manager, error) {
	dataDir, err := config.DataDir(dataDirFlag)
	if err != nil {
		return nil, err
	}
	return ffmpeg.New(dataDir, opts...)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
