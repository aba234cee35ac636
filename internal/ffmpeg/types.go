package ffmpeg

// DownloadConfig overrides where the distribution archive is fetched from
// and where the executable sits inside it. A nil config means the platform
// default. Values are used as-is; a malformed URL surfaces as a download
// failure rather than an up-front validation error.
type DownloadConfig struct {
	URL            string `json:"url"`
	ExecutablePath string `json:"executablePath"`
}

// DownloadProgress is a transient snapshot of an in-flight download. Total
// and Percentage are nil when the server did not declare a content length.
type DownloadProgress struct {
	Downloaded uint64   `json:"downloaded"`
	Total      *uint64  `json:"total,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// CheckResult reports whether the managed executable is installed and
// runnable. Path is set whenever the file exists, even if running it
// failed; Version is the first line of `ffmpeg -version` output when the
// probe succeeded.
type CheckResult struct {
	Available bool   `json:"available"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
}

// DownloadResult reports a completed download and install.
type DownloadResult struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message,omitempty"`
}

// ExecuteResult captures a finished run of the managed executable. Success
// is true only for exit code 0. ExitCode is nil when the process was killed
// by a signal instead of exiting.
type ExecuteResult struct {
	Success  bool   `json:"success"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode *int   `json:"exitCode,omitempty"`
}

// DeleteResult reports the outcome of removing the installation.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
