package app

import (
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if RootCmd.Use != "ffmpegctl" {
		t.Errorf("expected Use to be 'ffmpegctl', got '%s'", RootCmd.Use)
	}

	if RootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if RootCmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	commands := RootCmd.Commands()

	expectedCommands := []string{"check", "download", "exec", "remove"}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		// Use may carry argument hints ("exec -- [ffmpeg arguments...]").
		name := strings.Fields(cmd.Use)[0]
		foundCommands[name] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("expected command '%s' to be registered", expected)
		}
	}
}

func TestRootCommandHasPersistentFlags(t *testing.T) {
	for _, name := range []string{"data-dir", "json"} {
		flag := RootCmd.PersistentFlags().Lookup(name)
		if flag == nil {
			t.Errorf("expected --%s flag to be registered", name)
			continue
		}
		if flag.Usage == "" {
			t.Errorf("expected --%s flag to have usage text", name)
		}
	}
}

func TestDownloadCommandFlags(t *testing.T) {
	for _, name := range []string{"url", "exe-path", "quiet"} {
		if downloadCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected download --%s flag to be registered", name)
		}
	}
}

func TestNewManagerUsesDataDirFlag(t *testing.T) {
	orig := dataDirFlag
	defer func() { dataDirFlag = orig }()

	dataDirFlag = t.TempDir()
	m, err := newManager()
	if err != nil {
		t.Fatalf("newManager returned error: %v", err)
	}
	if !strings.HasPrefix(m.InstallRoot(), dataDirFlag) {
		t.Errorf("install root %q should be under the flagged data dir %q", m.InstallRoot(), dataDirFlag)
	}
}
