package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ffmpegctl/internal/config"
	"github.com/blackwell-systems/ffmpegctl/internal/ffmpeg"
	"github.com/blackwell-systems/ffmpegctl/internal/output"
)

var (
	downloadURLFlag      string
	downloadExecPathFlag string
	downloadQuietFlag    bool
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download and install the FFmpeg binary for this platform",
	Long: `Download the FFmpeg distribution archive for this platform, extract the
executable into the managed install root, and mark it executable.

The source defaults to a well-known static build per platform. Override it
with --url (and --exe-path for the executable's location inside the
archive), or with the FFMPEGCTL_DOWNLOAD_URL and FFMPEGCTL_EXECUTABLE_PATH
environment variables.

An existing install is overwritten; there is no versioning.

Examples:
  # Install the default build with a progress bar
  ffmpegctl download

  # Install from a mirror
  ffmpegctl download --url https://mirror.example.com/ffmpeg.zip

  # Mirror with a different archive layout
  ffmpegctl download --url https://mirror.example.com/ffmpeg.zip --exe-path bin/ffmpeg

  # Suppress progress output
  ffmpegctl download --quiet`,
	Args: cobra.NoArgs,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVar(&downloadURLFlag, "url", "", "archive URL (default: per-platform static build)")
	downloadCmd.Flags().StringVar(&downloadExecPathFlag, "exe-path", "", "path of the executable inside the archive")
	downloadCmd.Flags().BoolVar(&downloadQuietFlag, "quiet", false, "suppress progress output")
}

func runDownload(cmd *cobra.Command, args []string) error {
	var bar *output.DownloadBar
	var opts []ffmpeg.Option
	if !downloadQuietFlag && !jsonFlag {
		bar = output.NewDownloadBar("Downloading FFmpeg")
		opts = append(opts, ffmpeg.WithNotifier(ffmpeg.NotifierFunc(func(p ffmpeg.DownloadProgress) {
			bar.Update(p.Downloaded, p.Total)
		})))
	}

	m, err := newManager(opts...)
	if err != nil {
		return err
	}

	cfg := config.DownloadOverrides(downloadURLFlag, downloadExecPathFlag, m.Profile())
	res, err := m.Download(cfg)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if jsonFlag {
		return printJSON(res)
	}
	fmt.Println(res.Message)
	fmt.Printf("Installed to %s\n", res.Path)
	return nil
}
