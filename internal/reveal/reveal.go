// Package reveal asks the platform file manager to show a saved file.
//
// Only some platforms have such an integration. Elsewhere [New] returns a
// Revealer that does nothing, so callers never branch on the platform.
package reveal

import (
	"os/exec"

	"github.com/Iron-Ham/pasteimg/internal/errors"
)

// Revealer shows a file in the platform file manager.
type Revealer interface {
	// Reveal starts the request and returns without waiting for the file
	// manager. Failures are *errors.RevealError.
	Reveal(path string) error
}

// Nop is a Revealer that does nothing.
type Nop struct{}

// Reveal implements Revealer.
func (Nop) Reveal(string) error { return nil }

// commandRevealer starts an external command to reveal a path.
type commandRevealer struct {
	name    string // file manager name for messages
	command func(path string) *exec.Cmd
}

// Reveal implements Revealer. The command is started, not awaited.
func (r commandRevealer) Reveal(path string) error {
	cmd := r.command(path)
	if err := cmd.Start(); err != nil {
		return errors.NewRevealError("failed to open "+r.name, err).WithPath(path)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
