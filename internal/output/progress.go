// Package output provides terminal rendering for ffmpegctl.
//
// The download bar is TTY-aware: on a terminal it redraws in place with a
// carriage return, while on a pipe it stays quiet until completion so logs
// are not flooded with redraw frames. It is safe to update from a goroutine
// other than the one that created it.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// writerIsTTY returns true if the given writer exposes an Fd() method
// (e.g. *os.File) and that fd is a terminal. Falls back to false for
// plain io.Writer values such as *bytes.Buffer.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// DownloadBar displays byte-based download progress with a percentage when
// the total size is known, and a plain running byte count when it is not.
// Example: [=========>          ]  45% 12 MB / 27 MB Downloading FFmpeg
type DownloadBar struct {
	description string
	width       int
	downloaded  uint64
	total       uint64 // 0 means unknown
	hasTotal    bool
	mu          sync.Mutex
	writer      io.Writer
}

// NewDownloadBar creates a download bar with the given description.
func NewDownloadBar(description string) *DownloadBar {
	return &DownloadBar{
		description: description,
		width:       30,
		writer:      os.Stdout,
	}
}

// SetWriter sets the output writer (useful for testing).
func (b *DownloadBar) SetWriter(w io.Writer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writer = w
}

// Update records the current downloaded byte count and redraws. A nil
// total means the size is unknown; no percentage or bar is drawn then.
func (b *DownloadBar) Update(downloaded uint64, total *uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.downloaded = downloaded
	if total != nil {
		b.total = *total
		b.hasTotal = true
	}
	b.render(false)
}

// Finish draws the final state and moves to a new line.
func (b *DownloadBar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.render(true)
	if writerIsTTY(b.writer) {
		fmt.Fprintln(b.writer)
	}
}

// render draws the bar (must be called with lock held). On a non-TTY
// writer only the final frame is emitted.
func (b *DownloadBar) render(final bool) {
	tty := writerIsTTY(b.writer)
	if !tty && !final {
		return
	}

	line := b.line()
	if tty {
		fmt.Fprintf(b.writer, "\r%s", line)
	} else {
		fmt.Fprintln(b.writer, line)
	}
}

// line formats the current progress frame.
func (b *DownloadBar) line() string {
	if !b.hasTotal || b.total == 0 {
		return fmt.Sprintf("%s %s", humanize.Bytes(b.downloaded), b.description)
	}

	percentage := int(b.downloaded * 100 / b.total)
	if percentage > 100 {
		percentage = 100
	}
	filled := int(uint64(b.width) * b.downloaded / b.total)
	if filled > b.width {
		filled = b.width
	}

	bar := strings.Builder{}
	bar.WriteString("[")
	for i := 0; i < b.width; i++ {
		switch {
		case i < filled-1:
			bar.WriteString("=")
		case i == filled-1:
			bar.WriteString(">")
		default:
			bar.WriteString(" ")
		}
	}
	bar.WriteString("]")

	return fmt.Sprintf("%s %3d%% %s / %s %s",
		bar.String(), percentage,
		humanize.Bytes(b.downloaded), humanize.Bytes(b.total),
		b.description)
}
