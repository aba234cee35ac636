package ffmpeg

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Execute runs the managed executable with the given arguments and waits
// for it to finish, capturing both output streams and the exit code.
//
// A missing binary fails with ErrNotFound before anything is spawned, and
// a binary that cannot be launched fails with ErrCommandExecution. A
// launched process exiting non-zero is not an error: the result carries
// Success=false and the exit code. ExitCode is nil when the process was
// terminated by a signal.
func (m *Manager) Execute(args []string) (ExecuteResult, error) {
	exe := m.ExecutablePath()
	if _, err := os.Stat(exe); err != nil {
		return ExecuteResult{}, ErrNotFound
	}

	cmd := exec.Command(exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return ExecuteResult{}, fmt.Errorf("%w: %v", ErrCommandExecution, err)
		}
	}

	state := cmd.ProcessState
	var exitCode *int
	if code := state.ExitCode(); code >= 0 {
		exitCode = &code
	}

	return ExecuteResult{
		Success:  state.Success(),
		Stdout:   strings.ToValidUTF8(stdout.String(), "�"),
		Stderr:   strings.ToValidUTF8(stderr.String(), "�"),
		ExitCode: exitCode,
	}, nil
}
