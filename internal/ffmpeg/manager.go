// Package ffmpeg manages the lifecycle of a single FFmpeg installation:
// checking for a usable binary, downloading and unpacking a platform build,
// running it with arbitrary arguments, and deleting the installation.
//
// The managed layout is <dataDir>/bin/<platform>/ffmpeg (plus .exe on
// Windows), with a fixed-name temporary file alongside it while a download
// is in flight. Exactly one installation exists per data directory and
// platform; there is no versioning.
package ffmpeg

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/blackwell-systems/ffmpegctl/internal/platform"
)

// downloadTimeout bounds the total duration of a distribution download,
// including connection setup and body streaming.
const downloadTimeout = 300 * time.Second

// versionArg is the argument used to probe an installed binary.
const versionArg = "-version"

// Manager owns one FFmpeg installation rooted under a host-supplied data
// directory. Construct it with New and share it freely: Download calls are
// serialized internally, and the other operations are independent.
type Manager struct {
	dataDir  string
	profile  platform.Profile
	client   *http.Client
	notifier Notifier

	// downloadMu serializes downloads so concurrent callers cannot race
	// on the shared temporary file.
	downloadMu sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier sets the progress notifier for downloads.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

// WithHTTPClient replaces the default HTTP client (300s total timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(m *Manager) { m.client = c }
}

// WithProfile overrides platform resolution. Intended for tests and for
// tooling that manages an install root for a platform other than the one
// it runs on.
func WithProfile(p platform.Profile) Option {
	return func(m *Manager) { m.profile = p }
}

// New creates a Manager rooted at dataDir. It fails with
// platform.ErrUnsupported when the running OS has no platform profile, so
// no operation on an unsupported system ever touches the filesystem or
// network.
func New(dataDir string, opts ...Option) (*Manager, error) {
	if dataDir == "" {
		return nil, errors.New("data directory is required")
	}

	m := &Manager{
		dataDir: dataDir,
		client:  &http.Client{Timeout: downloadTimeout},
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.profile == (platform.Profile{}) {
		p, err := platform.Resolve()
		if err != nil {
			return nil, err
		}
		m.profile = p
	}
	return m, nil
}

// Profile returns the platform profile the manager resolved at
// construction.
func (m *Manager) Profile() platform.Profile {
	return m.profile
}

// InstallRoot returns the directory holding the managed installation.
func (m *Manager) InstallRoot() string {
	return m.profile.InstallRoot(m.dataDir)
}

// ExecutablePath returns the canonical path of the managed executable.
// The file may or may not exist.
func (m *Manager) ExecutablePath() string {
	return m.profile.ExecutablePath(m.dataDir)
}

// Check reports whether the managed executable is present and runnable.
// It never fails: a missing file, a file that cannot be executed, and a
// version probe that exits non-zero all degrade to Available=false.
func (m *Manager) Check() CheckResult {
	exe := m.ExecutablePath()
	if _, err := os.Stat(exe); err != nil {
		return CheckResult{}
	}

	out, err := exec.Command(exe, versionArg).Output()
	if err != nil {
		// Present but not usable: report the path anyway.
		return CheckResult{Path: exe}
	}

	version, _, _ := strings.Cut(string(out), "\n")
	return CheckResult{
		Available: true,
		Path:      exe,
		Version:   strings.TrimSpace(version),
	}
}

// Remove deletes the installation root and everything in it, including any
// lingering temporary download file. A missing root is treated as already
// removed; only a real filesystem error propagates.
func (m *Manager) Remove() (DeleteResult, error) {
	root := m.InstallRoot()
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return DeleteResult{
			Success: true,
			Message: "FFmpeg directory does not exist",
		}, nil
	}

	if err := os.RemoveAll(root); err != nil {
		return DeleteResult{}, fmt.Errorf("failed to remove %s: %w", root, err)
	}
	return DeleteResult{
		Success: true,
		Message: "FFmpeg deleted successfully",
	}, nil
}
