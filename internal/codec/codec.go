// Package codec converts captured images into the byte encodings pasteimg
// writes to disk.
//
// Every capture is first encoded to the canonical lossless form (PNG). Those
// bytes name the file and, for lossless output, are the file. Lossy output
// (JPEG) is produced by decoding the canonical bytes again and re-encoding
// them, so the name never depends on the chosen output format.
package codec

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/Iron-Ham/pasteimg/internal/errors"
)

// Format identifies an output encoding.
type Format int

const (
	// FormatPNG is the lossless canonical encoding.
	FormatPNG Format = iota
	// FormatJPEG is the lossy output encoding.
	FormatJPEG
)

// DefaultQuality is the JPEG quality used for lossy output.
const DefaultQuality = 85

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	default:
		return "bin"
	}
}

// Lossless reports whether f is the canonical lossless encoding.
func (f Format) Lossless() bool {
	return f == FormatPNG
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Encoded is an immutable encoded image tagged with its format.
// Callers must not modify Data.
type Encoded struct {
	Format Format
	Data   []byte
}

// Codec is the encoding boundary the capture pipeline depends on.
type Codec interface {
	// EncodeCanonical encodes img to the canonical lossless form.
	EncodeCanonical(img image.Image) (Encoded, error)
	// ReencodeLossy decodes canonical bytes and re-encodes them lossy at quality.
	ReencodeLossy(canonical []byte, quality int) (Encoded, error)
}

// Imaging implements Codec with github.com/disintegration/imaging.
type Imaging struct{}

// New returns an Imaging codec with default settings.
func New() *Imaging {
	return &Imaging{}
}

// EncodeCanonical encodes img as PNG.
func (c *Imaging) EncodeCanonical(img image.Image) (Encoded, error) {
	if img == nil {
		return Encoded{}, errors.NewCodecError("failed to convert image to PNG", errors.ErrNilImage).
			WithStage("encode").WithFormat(FormatPNG.Extension())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return Encoded{}, errors.NewCodecError("failed to convert image to PNG", err).
			WithStage("encode").WithFormat(FormatPNG.Extension())
	}
	return Encoded{Format: FormatPNG, Data: buf.Bytes()}, nil
}

// ReencodeLossy decodes canonical PNG bytes and encodes them as JPEG at the
// given quality, which must be in (0, 100].
func (c *Imaging) ReencodeLossy(canonical []byte, quality int) (Encoded, error) {
	if quality <= 0 || quality > 100 {
		return Encoded{}, errors.NewCodecError("failed to encode JPEG", errors.ErrInvalidQuality).
			WithStage("encode").WithFormat(FormatJPEG.Extension())
	}

	img, err := imaging.Decode(bytes.NewReader(canonical))
	if err != nil {
		return Encoded{}, errors.NewCodecError("failed to load image", err).
			WithStage("decode").WithFormat(FormatPNG.Extension())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return Encoded{}, errors.NewCodecError("failed to encode JPEG", err).
			WithStage("encode").WithFormat(FormatJPEG.Extension())
	}
	return Encoded{Format: FormatJPEG, Data: buf.Bytes()}, nil
}
