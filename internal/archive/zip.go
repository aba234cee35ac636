package archive

import (
	"archive/zip"
	"fmt"
)

// extractZip walks the zip central directory in index order, extracts the
// first matching file entry, and counts any further entries that would also
// have matched so the caller can report ambiguity.
func extractZip(archivePath, destPath, relPath string) (Match, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return Match{}, fmt.Errorf("failed to open zip archive: %w", err)
	}
	defer zr.Close()

	var match Match
	found := false
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() || !entryMatches(entry.Name, relPath) {
			continue
		}
		if found {
			match.Extra++
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return Match{}, fmt.Errorf("failed to open zip entry %s: %w", entry.Name, err)
		}
		err = writeEntry(destPath, rc)
		rc.Close()
		if err != nil {
			return Match{}, err
		}
		match.Entry = entry.Name
		found = true
	}

	if !found {
		return Match{}, fmt.Errorf("%w: %s", ErrEntryNotFound, relPath)
	}
	return match, nil
}
