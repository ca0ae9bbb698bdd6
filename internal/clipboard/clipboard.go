// Package clipboard reads images from the system clipboard.
package clipboard

import (
	"bytes"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"golang.design/x/clipboard"

	"github.com/Iron-Ham/pasteimg/internal/errors"
)

// Source yields the image currently on the clipboard.
type Source interface {
	// Image returns the clipboard image. It fails with an
	// *errors.ClipboardError wrapping ErrClipboardAccess when the clipboard
	// cannot be opened and ErrNoImage when it holds no image.
	Image() (image.Image, error)
}

// System reads the platform clipboard through golang.design/x/clipboard.
// The zero value is ready to use.
type System struct {
	once    sync.Once
	initErr error

	// init and read are replaced in tests.
	init func() error
	read func() []byte
}

// NewSystem returns a Source backed by the platform clipboard.
func NewSystem() *System {
	return &System{}
}

func (s *System) open() error {
	s.once.Do(func() {
		initFn := s.init
		if initFn == nil {
			initFn = clipboard.Init
		}
		s.initErr = initFn()
	})
	return s.initErr
}

// Image returns the image held in the clipboard's image slot. The clipboard
// is never written.
func (s *System) Image() (image.Image, error) {
	if err := s.open(); err != nil {
		return nil, errors.NewClipboardError("failed to create clipboard context: "+err.Error(), errors.ErrClipboardAccess)
	}

	readFn := s.read
	if readFn == nil {
		readFn = func() []byte { return clipboard.Read(clipboard.FmtImage) }
	}

	data := readFn()
	if len(data) == 0 {
		return nil, errors.NewClipboardError(errors.ErrNoImage.Error(), errors.ErrNoImage)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewCodecError("failed to decode clipboard image", err).
			WithStage("decode").WithFormat("png")
	}
	return img, nil
}
