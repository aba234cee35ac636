package platform

import "path/filepath"

// TempDownloadName is the fixed filename used for in-progress archive
// downloads inside the install root. A file by this name only exists during
// a download or after one was interrupted; the next download overwrites it.
const TempDownloadName = "ffmpeg_download.tmp"

// InstallRoot returns the directory holding this platform's managed FFmpeg
// installation: <dataDir>/bin/<platform>. The path is recomputed on every
// call and its existence is not implied.
func (p Profile) InstallRoot(dataDir string) string {
	return filepath.Join(dataDir, "bin", p.ID.String())
}

// ExecutablePath returns the canonical path of the installed executable
// within the install root.
func (p Profile) ExecutablePath(dataDir string) string {
	return filepath.Join(p.InstallRoot(dataDir), p.ExecName)
}

// TempDownloadPath returns the path of the transient download file within
// the install root.
func (p Profile) TempDownloadPath(dataDir string) string {
	return filepath.Join(p.InstallRoot(dataDir), TempDownloadName)
}
