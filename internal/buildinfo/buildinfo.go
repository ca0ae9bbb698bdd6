// Package buildinfo reports the version of the running binary.
package buildinfo

import "runtime/debug"

// version is set at link time:
//
//	go build -ldflags "-X github.com/Iron-Ham/pasteimg/internal/buildinfo.version=v1.2.0"
var version = "dev"

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Version returns the linker-provided version, then the module version
// recorded by `go install`, then the short VCS revision, and "dev" when none
// of those exist.
func Version() string {
	if version != "dev" && version != "" {
		return version
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "dev-" + s.Value[:7]
		}
	}
	return "dev"
}
