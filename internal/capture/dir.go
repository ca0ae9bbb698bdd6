package capture

import "path/filepath"

// FallbackDownloadsDir is used when HOME is unset or empty. It may not
// exist; the write step reports that as a filesystem error.
var FallbackDownloadsDir = filepath.Join(string(filepath.Separator)+"Users", "Downloads")

// DownloadsDir resolves the directory captures are written to: $HOME/Downloads,
// or FallbackDownloadsDir without a home directory. It never fails and never
// touches the filesystem.
func DownloadsDir(getenv func(string) string) string {
	if getenv != nil {
		// An empty HOME counts as unset. Joining "" would yield the relative
		// path "Downloads" and write into the working directory.
		if home := getenv("HOME"); home != "" {
			return filepath.Join(home, "Downloads")
		}
	}
	return FallbackDownloadsDir
}
