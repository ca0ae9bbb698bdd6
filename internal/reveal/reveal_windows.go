//go:build windows

package reveal

import (
	"os/exec"
	"syscall"
)

// New returns a Revealer that selects the file in Explorer.
func New() Revealer {
	return commandRevealer{
		name:    "Explorer",
		command: explorerCommand,
	}
}

// explorerCommand builds `explorer /select,"<path>"`. Explorer parses its
// own command line, so the raw line is set directly; the default argument
// quoting would wrap "/select,<path>" as one token and break paths with
// spaces.
func explorerCommand(path string) *exec.Cmd {
	cmd := exec.Command("explorer")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: `explorer /select,"` + path + `"`,
	}
	return cmd
}
