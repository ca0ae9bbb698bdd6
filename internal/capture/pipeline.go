// Package capture turns the clipboard image into a file named by its content.
//
// A capture runs clipboard -> canonical encode -> fingerprint -> directory
// resolution -> optional lossy re-encode -> write, in that order, and stops
// at the first failure. Nothing is retried.
package capture

import (
	"path/filepath"
	"time"

	"github.com/Iron-Ham/pasteimg/internal/clipboard"
	"github.com/Iron-Ham/pasteimg/internal/codec"
	"github.com/Iron-Ham/pasteimg/internal/errors"
	"github.com/Iron-Ham/pasteimg/internal/fingerprint"
	"github.com/Iron-Ham/pasteimg/internal/logging"
)

// Pipeline captures one clipboard image per call. It holds no state between
// calls and may be reused.
type Pipeline struct {
	source clipboard.Source
	codec  codec.Codec

	quality        int
	fingerprintLen int
	dir            string
	getenv         func(string) string
	writeFile      WriteFileFunc
	logger         *logging.Logger
}

// New creates a Pipeline reading from source and encoding with c.
func New(source clipboard.Source, c codec.Codec, opts ...Option) *Pipeline {
	p := defaultPipeline()
	p.source = source
	p.codec = c
	for _, opt := range opts {
		opt(&p)
	}
	return &p
}

// Dir returns the directory captures are written to.
func (p *Pipeline) Dir() string {
	if p.dir != "" {
		return p.dir
	}
	return DownloadsDir(p.getenv)
}

// Capture saves the clipboard image as PNG when lossless is true and as JPEG
// otherwise. The file stem is the fingerprint of the canonical PNG bytes in
// both cases, so the same image captured with either setting differs only
// by extension.
//
// Errors are *errors.ClipboardError, *errors.CodecError or
// *errors.FilesystemError. A FilesystemError means Path may hold nothing or
// a partial file.
func (p *Pipeline) Capture(lossless bool) (*Result, error) {
	start := time.Now()
	spec := SpecFor(lossless, p.quality)
	logger := p.logger.WithFormat(spec.Format.Extension())

	img, err := p.source.Image()
	if err != nil {
		logger.WithStage("clipboard").Debug("clipboard read failed", "error", err.Error())
		return nil, err
	}

	canonical, err := p.codec.EncodeCanonical(img)
	if err != nil {
		logger.WithStage("encode").Debug("canonical encode failed", "error", err.Error())
		return nil, err
	}

	stem := fingerprint.Truncated(canonical.Data, p.fingerprintLen)
	logger.WithStage("fingerprint").Debug("canonical bytes hashed",
		"bytes", len(canonical.Data),
		"digest", fingerprint.Sum(canonical.Data),
		"fingerprint", stem)

	out := canonical
	if !spec.Format.Lossless() {
		out, err = p.codec.ReencodeLossy(canonical.Data, spec.Quality)
		if err != nil {
			logger.WithStage("encode").Debug("lossy re-encode failed", "error", err.Error())
			return nil, err
		}
	}

	path := filepath.Join(p.Dir(), stem+"."+out.Format.Extension())
	if err := p.writeFile(path, out.Data, 0644); err != nil {
		logger.WithStage("write").Debug("write failed", "path", path, "error", err.Error())
		return nil, errors.NewFilesystemError("failed to write image", err).WithPath(path)
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	logger.WithStage("write").Debug("capture saved",
		"path", path,
		"encoding", out.Format.String(),
		"bytes", len(out.Data),
		"duration_ms", time.Since(start).Milliseconds())

	return &Result{
		Path:        path,
		Fingerprint: stem,
		Format:      out.Format,
		Size:        len(out.Data),
	}, nil
}
