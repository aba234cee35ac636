package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the managed FFmpeg binary is installed and runnable",
	Long: `Check whether the managed FFmpeg binary exists and responds to a version
probe. The command never fails on a missing or broken install; it reports
what it found.

Examples:
  # Human-readable status
  ffmpegctl check

  # Machine-readable status for host applications
  ffmpegctl check --json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	res := m.Check()
	if jsonFlag {
		return printJSON(res)
	}

	switch {
	case res.Available:
		fmt.Println("FFmpeg is available")
		fmt.Printf("  Path:    %s\n", res.Path)
		if res.Version != "" {
			fmt.Printf("  Version: %s\n", res.Version)
		}
	case res.Path != "":
		fmt.Printf("FFmpeg is present at %s but could not be run.\n", res.Path)
		fmt.Println("Run 'ffmpegctl download' to reinstall it.")
	default:
		fmt.Println("FFmpeg is not installed.")
		fmt.Println("Run 'ffmpegctl download' to install it.")
	}
	return nil
}
