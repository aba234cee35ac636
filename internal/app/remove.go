package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the managed FFmpeg installation",
	Long: `Delete the managed install root for this platform, including the FFmpeg
binary and any leftover partial downloads.

Removing an installation that does not exist is not an error; the command
reports that there was nothing to do. Only a real filesystem failure (for
example, permission denied) makes the command fail.

Examples:
  # Delete the managed install
  ffmpegctl remove

  # Machine-readable result
  ffmpegctl remove --json`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	res, err := m.Remove()
	if err != nil {
		return err
	}

	if jsonFlag {
		return printJSON(res)
	}
	fmt.Println(res.Message)
	return nil
}
