// Package presenter prints the final outcome of a capture.
package presenter

import (
	"fmt"
	"io"

	"github.com/Iron-Ham/pasteimg/internal/errors"
	"github.com/Iron-Ham/pasteimg/internal/tui/styles"
)

// Presenter writes one line per message: successes to out, errors and
// warnings to errOut.
type Presenter struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a Presenter.
func New(out, errOut io.Writer) *Presenter {
	return &Presenter{out: out, errOut: errOut}
}

// Saved reports a successful capture.
func (p *Presenter) Saved(path string) {
	p.Success(fmt.Sprintf("Saved clipboard image to %s", styles.RenderPath(path)))
}

// Success prints msg with a success marker.
func (p *Presenter) Success(msg string) {
	p.line(p.out, styles.StatusSuccess, msg)
}

// Error prints err with a failure marker.
func (p *Presenter) Error(err error) {
	p.line(p.errOut, styles.StatusError, err.Error())
}

// Warn prints msg with a warning marker.
func (p *Presenter) Warn(msg string) {
	p.line(p.errOut, styles.StatusWarning, msg)
}

// Report prints err as a failure when it is fatal and as a warning otherwise.
func (p *Presenter) Report(err error) {
	if err == nil {
		return
	}
	if errors.GetSeverity(err) >= errors.SeverityError {
		p.Error(err)
		return
	}
	p.Warn(err.Error())
}

func (p *Presenter) line(w io.Writer, status, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", styles.StatusPrefix(status), msg)
}
