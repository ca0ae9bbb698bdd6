package capture

import (
	"os"

	"github.com/Iron-Ham/pasteimg/internal/codec"
	"github.com/Iron-Ham/pasteimg/internal/fingerprint"
	"github.com/Iron-Ham/pasteimg/internal/logging"
)

// OutputSpec selects the encoding written to disk.
type OutputSpec struct {
	Format  codec.Format
	Quality int // JPEG quality; ignored for lossless output
}

// SpecFor returns the OutputSpec chosen by the --lossless flag.
func SpecFor(lossless bool, quality int) OutputSpec {
	if lossless {
		return OutputSpec{Format: codec.FormatPNG}
	}
	return OutputSpec{Format: codec.FormatJPEG, Quality: quality}
}

// Result describes a saved capture.
type Result struct {
	Path        string       // Absolute path of the written file (best effort)
	Fingerprint string       // File stem, derived from the canonical bytes
	Format      codec.Format // Encoding written to Path
	Size        int          // Bytes written
}

// WriteFileFunc writes data to name with create-or-truncate semantics.
type WriteFileFunc func(name string, data []byte, perm os.FileMode) error

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the diagnostics logger.
func WithLogger(logger *logging.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithQuality sets the JPEG quality used for lossy output.
func WithQuality(quality int) Option {
	return func(p *Pipeline) {
		p.quality = quality
	}
}

// WithFingerprintLength sets how many hex characters name the file.
func WithFingerprintLength(n int) Option {
	return func(p *Pipeline) {
		p.fingerprintLen = n
	}
}

// WithDir writes into dir instead of the resolved downloads directory.
func WithDir(dir string) Option {
	return func(p *Pipeline) {
		p.dir = dir
	}
}

// WithGetenv replaces the environment lookup used to resolve the downloads
// directory.
func WithGetenv(getenv func(string) string) Option {
	return func(p *Pipeline) {
		p.getenv = getenv
	}
}

// WithWriteFile replaces the file writer.
func WithWriteFile(write WriteFileFunc) Option {
	return func(p *Pipeline) {
		p.writeFile = write
	}
}

func defaultPipeline() Pipeline {
	return Pipeline{
		quality:        codec.DefaultQuality,
		fingerprintLen: fingerprint.Length,
		getenv:         os.Getenv,
		writeFile:      os.WriteFile,
		logger:         logging.NopLogger(),
	}
}
