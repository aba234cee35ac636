package ffmpeg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/blackwell-systems/ffmpegctl/internal/archive"
)

// downloadChunkSize is the read buffer for streaming the archive; one
// progress update is emitted per chunk.
const downloadChunkSize = 32 * 1024

// Download fetches the FFmpeg distribution archive, extracts the executable
// into the install root, and marks it executable on POSIX systems. A nil
// cfg uses the platform default source.
//
// The archive is streamed to a fixed-name temporary file inside the install
// root, with a progress update published after every chunk. On success the
// temporary file is deleted. On failure partial files are left behind; the
// next Download overwrites them and Remove clears them.
func (m *Manager) Download(cfg *DownloadConfig) (DownloadResult, error) {
	m.downloadMu.Lock()
	defer m.downloadMu.Unlock()

	effective := DownloadConfig{
		URL:            m.profile.DownloadURL,
		ExecutablePath: m.profile.ArchiveExecPath,
	}
	if cfg != nil {
		effective = *cfg
	}
	if effective.URL == "" || effective.ExecutablePath == "" {
		return DownloadResult{}, fmt.Errorf("%w: config is missing url or executable path", ErrDownload)
	}

	root := m.InstallRoot()
	if err := os.MkdirAll(root, 0o755); err != nil {
		return DownloadResult{}, fmt.Errorf("failed to create install root %s: %w", root, err)
	}

	tmpPath := m.profile.TempDownloadPath(m.dataDir)
	if err := m.fetch(effective.URL, tmpPath); err != nil {
		return DownloadResult{}, err
	}

	exePath := m.ExecutablePath()
	match, err := archive.Extract(tmpPath, exePath, effective.ExecutablePath)
	if err != nil {
		return DownloadResult{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	if err := os.Remove(tmpPath); err != nil {
		return DownloadResult{}, fmt.Errorf("failed to remove temporary download: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(exePath, 0o755); err != nil {
			return DownloadResult{}, fmt.Errorf("failed to set executable permissions: %w", err)
		}
	}

	message := "FFmpeg downloaded successfully"
	if match.Extra > 0 {
		// First match wins by contract; surface the ambiguity so the
		// host can tell which entry was used.
		message = fmt.Sprintf("FFmpeg downloaded successfully (used archive entry %s; %d other entries also matched %s)",
			match.Entry, match.Extra, effective.ExecutablePath)
	}

	return DownloadResult{
		Success: true,
		Path:    exePath,
		Message: message,
	}, nil
}

// fetch streams url to destPath, publishing progress after each chunk.
func (m *Manager) fetch(url, destPath string) error {
	resp, err := m.client.Get(url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: failed to download: HTTP %d", ErrDownload, resp.StatusCode)
	}

	var total *uint64
	if resp.ContentLength >= 0 {
		t := uint64(resp.ContentLength)
		total = &t
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary download %s: %w", destPath, err)
	}
	defer out.Close()

	var downloaded uint64
	buf := make([]byte, downloadChunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, err := out.Write(buf[:n]); err != nil {
				return fmt.Errorf("failed to write temporary download: %w", err)
			}
			downloaded += uint64(n)
			m.publishProgress(downloaded, total)
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return fmt.Errorf("%w: %v", ErrDownload, readErr)
		}
	}

	return out.Close()
}

// publishProgress emits one progress update. Percentage is computed only
// when the total is known and non-zero.
func (m *Manager) publishProgress(downloaded uint64, total *uint64) {
	if m.notifier == nil {
		return
	}
	progress := DownloadProgress{
		Downloaded: downloaded,
		Total:      total,
	}
	if total != nil && *total > 0 {
		pct := float64(downloaded) / float64(*total) * 100
		progress.Percentage = &pct
	}
	m.notifier.Notify(progress)
}
