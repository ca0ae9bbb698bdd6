package presenter

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/pasteimg/internal/errors"
)

func TestPresenter(t *testing.T) {
	tests := []struct {
		name    string
		call    func(p *Presenter)
		wantOut string
		wantErr string
	}{
		{
			name:    "saved",
			call:    func(p *Presenter) { p.Saved("/home/ada/Downloads/2cf24.png") },
			wantOut: "✔ Saved clipboard image to /home/ada/Downloads/2cf24.png\n",
		},
		{
			name:    "error",
			call:    func(p *Presenter) { p.Error(errors.New("clipboard error: no image found in clipboard")) },
			wantErr: "✖ clipboard error: no image found in clipboard\n",
		},
		{
			name:    "warning",
			call:    func(p *Presenter) { p.Warn("reveal error: failed to open Finder") },
			wantErr: "! reveal error: failed to open Finder\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			tt.call(New(&out, &errOut))

			if got := ansi.Strip(out.String()); got != tt.wantOut {
				t.Errorf("stdout = %q, want %q", got, tt.wantOut)
			}
			if got := ansi.Strip(errOut.String()); got != tt.wantErr {
				t.Errorf("stderr = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestPresenter_Report(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{
			name:    "nil prints nothing",
			err:     nil,
			wantErr: "",
		},
		{
			name:    "fatal capture error",
			err:     errors.NewClipboardError(errors.ErrNoImage.Error(), errors.ErrNoImage),
			wantErr: "✖ clipboard error: no image found in clipboard\n",
		},
		{
			name:    "unclassified error is fatal",
			err:     errors.New("boom"),
			wantErr: "✖ boom\n",
		},
		{
			name:    "reveal failure is a warning",
			err:     errors.NewRevealError("failed to open Finder", nil),
			wantErr: "! reveal error: failed to open Finder\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			New(&out, &errOut).Report(tt.err)

			if out.Len() != 0 {
				t.Errorf("stdout = %q, want empty", out.String())
			}
			if got := ansi.Strip(errOut.String()); got != tt.wantErr {
				t.Errorf("stderr = %q, want %q", got, tt.wantErr)
			}
		})
	}
}
