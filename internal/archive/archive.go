// Package archive locates a single executable inside a downloaded FFmpeg
// distribution archive and streams it out to a destination file.
//
// Only the configured executable is extracted; every other entry in the
// archive is discarded. Two formats are supported, covering all default
// distribution sources: zip (macOS, Windows builds) and tar.xz (Linux
// static builds). The format is sniffed from the file's magic bytes rather
// than its name, since the download is saved under a fixed temporary name.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEntryNotFound is returned when no archive entry matches the configured
// executable path.
var ErrEntryNotFound = errors.New("executable not found in archive")

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	xzMagic  = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Match reports which archive entry was extracted and whether the match was
// ambiguous.
type Match struct {
	// Entry is the name of the extracted archive entry.
	Entry string

	// Extra counts additional entries that also matched the configured
	// path. First match wins; a non-zero Extra means the archive had
	// other candidates that were skipped. Only the zip path reports
	// this — the tar path is a single forward stream and stops at the
	// first match.
	Extra int
}

// Extract scans archivePath for the first entry matching relPath and writes
// its contents to destPath, overwriting any existing file there. Matching is
// suffix/substring based so that archives with a versioned top-level
// directory (e.g. ffmpeg-8.0/bin/ffmpeg) still match a configured path of
// bin/ffmpeg.
func Extract(archivePath, destPath, relPath string) (Match, error) {
	magic, err := readMagic(archivePath)
	if err != nil {
		return Match{}, err
	}

	switch {
	case bytes.HasPrefix(magic, zipMagic):
		return extractZip(archivePath, destPath, relPath)
	case bytes.HasPrefix(magic, xzMagic):
		return extractTarXz(archivePath, destPath, relPath)
	default:
		return Match{}, fmt.Errorf("unrecognized archive format (magic %x)", magic)
	}
}

// entryMatches reports whether an archive entry name matches the configured
// relative executable path. Entry names are normalized to forward slashes
// before comparison.
func entryMatches(name, relPath string) bool {
	name = strings.ReplaceAll(name, `\`, "/")
	relPath = strings.ReplaceAll(relPath, `\`, "/")
	return strings.HasSuffix(name, relPath) || strings.Contains(name, relPath)
}

// writeEntry streams an entry's contents to destPath, truncating any
// existing file.
func writeEntry(destPath string, r io.Reader) error {
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	return out.Close()
}

func readMagic(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	magic := make([]byte, len(xzMagic))
	n, err := io.ReadFull(f, magic)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read archive header: %w", err)
	}
	return magic[:n], nil
}
