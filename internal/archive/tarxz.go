package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

// extractTarXz streams through an xz-compressed tarball and extracts the
// first regular file matching relPath. The stream is not rewound or read
// past the match, so ambiguity among later entries is not detected here.
func extractTarXz(archivePath, destPath, relPath string) (Match, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return Match{}, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	xzr, err := xz.NewReader(f)
	if err != nil {
		return Match{}, fmt.Errorf("failed to open xz stream: %w", err)
	}

	tr := tar.NewReader(xzr)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Match{}, fmt.Errorf("failed to read tar stream: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !entryMatches(hdr.Name, relPath) {
			continue
		}

		if err := writeEntry(destPath, tr); err != nil {
			return Match{}, err
		}
		return Match{Entry: hdr.Name}, nil
	}

	return Match{}, fmt.Errorf("%w: %s", ErrEntryNotFound, relPath)
}
