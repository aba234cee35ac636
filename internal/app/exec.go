package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec -- [ffmpeg arguments...]",
	Short: "Run the managed FFmpeg binary with the given arguments",
	Long: `Run the managed FFmpeg binary and wait for it to finish. Everything after
-- is passed to FFmpeg untouched.

The child's stdout and stderr are forwarded, and its exit code becomes
ffmpegctl's exit code. With --json, both streams and the exit code are
captured into a single JSON record instead.

The command fails only when no binary is installed or when it cannot be
launched at all; FFmpeg exiting non-zero is reported, not treated as a
ffmpegctl failure.

Examples:
  # Print the FFmpeg version
  ffmpegctl exec -- -version

  # Transcode a file
  ffmpegctl exec -- -i input.mp4 -c:v libvpx-vp9 output.webm

  # Capture the run as JSON
  ffmpegctl exec --json -- -i input.mp4 output.webm`,
	Args: cobra.ArbitraryArgs,
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	res, err := m.Execute(args)
	if err != nil {
		return err
	}

	if jsonFlag {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		fmt.Print(res.Stdout)
		fmt.Fprint(os.Stderr, res.Stderr)
	}

	// Propagate the child's exit status.
	if res.ExitCode != nil && *res.ExitCode != 0 {
		os.Exit(*res.ExitCode)
	}
	if !res.Success {
		os.Exit(1)
	}
	return nil
}
