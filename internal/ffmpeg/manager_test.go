package ffmpeg

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// newTestManager creates a Manager rooted in a fresh temp dir.
func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m, err := New(t.TempDir(), opts...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return m
}

// installFakeBinary writes a shell script at the managed executable path.
// Tests that spawn the managed binary are skipped on Windows, where shell
// scripts are not executable.
func installFakeBinary(t *testing.T, m *Manager, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake binaries are shell scripts")
	}

	exe := m.ExecutablePath()
	if err := os.MkdirAll(filepath.Dir(exe), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return exe
}

func TestNewRequiresDataDir(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("New(\"\") should fail")
	}
}

func TestCheckMissingBinary(t *testing.T) {
	m := newTestManager(t)

	got := m.Check()
	if got.Available {
		t.Error("Available should be false when nothing is installed")
	}
	if got.Path != "" {
		t.Errorf("Path = %q, want empty for a missing binary", got.Path)
	}
	if got.Version != "" {
		t.Errorf("Version = %q, want empty", got.Version)
	}
}

func TestCheckRunnableBinary(t *testing.T) {
	m := newTestManager(t)
	exe := installFakeBinary(t, m, `echo "ffmpeg version 8.0-test Copyright (c) 2000-2025"
echo "built with gcc"`)

	got := m.Check()
	if !got.Available {
		t.Fatal("Available should be true for a runnable binary")
	}
	if got.Path != exe {
		t.Errorf("Path = %q, want %q", got.Path, exe)
	}
	if got.Version != "ffmpeg version 8.0-test Copyright (c) 2000-2025" {
		t.Errorf("Version = %q, want first stdout line", got.Version)
	}
}

func TestCheckBrokenBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the executable permission bit")
	}
	m := newTestManager(t)

	// Present on disk but not executable: path is reported, but the
	// install is not usable.
	exe := m.ExecutablePath()
	if err := os.MkdirAll(filepath.Dir(exe), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(exe, []byte("not a real binary"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := m.Check()
	if got.Available {
		t.Error("Available should be false for a non-runnable file")
	}
	if got.Path != exe {
		t.Errorf("Path = %q, want %q (path is reported even when unusable)", got.Path, exe)
	}
	if got.Version != "" {
		t.Errorf("Version = %q, want empty", got.Version)
	}
}

func TestCheckNonZeroVersionProbe(t *testing.T) {
	m := newTestManager(t)
	installFakeBinary(t, m, "exit 1")

	got := m.Check()
	if got.Available {
		t.Error("Available should be false when the version probe exits non-zero")
	}
	if got.Path == "" {
		t.Error("Path should still be reported")
	}
}

func TestRemoveIdempotent(t *testing.T) {
	m := newTestManager(t)
	installFakeBinary(t, m, "exit 0")

	// Leave a stale temp download behind too; Remove clears everything.
	tmp := filepath.Join(m.InstallRoot(), "ffmpeg_download.tmp")
	if err := os.WriteFile(tmp, []byte("partial"), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := m.Remove()
	if err != nil {
		t.Fatalf("first Remove returned error: %v", err)
	}
	if !first.Success {
		t.Error("first Remove should succeed")
	}
	if _, err := os.Stat(m.InstallRoot()); !os.IsNotExist(err) {
		t.Error("install root should be gone after Remove")
	}

	second, err := m.Remove()
	if err != nil {
		t.Fatalf("second Remove returned error: %v", err)
	}
	if !second.Success {
		t.Error("second Remove should still succeed")
	}
	if second.Message != "FFmpeg directory does not exist" {
		t.Errorf("second Remove message = %q, want already-absent message", second.Message)
	}
}

func TestCheckAfterRemove(t *testing.T) {
	m := newTestManager(t)
	installFakeBinary(t, m, "exit 0")

	if _, err := m.Remove(); err != nil {
		t.Fatal(err)
	}

	got := m.Check()
	if got.Available || got.Path != "" || got.Version != "" {
		t.Errorf("Check after Remove = %+v, want empty result", got)
	}
}
