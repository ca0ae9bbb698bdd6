//go:build darwin

package reveal

import "os/exec"

// New returns a Revealer that runs `open -R <path>` to select the file in Finder.
func New() Revealer {
	return commandRevealer{
		name: "Finder",
		command: func(path string) *exec.Cmd {
			return exec.Command("open", "-R", path)
		},
	}
}
