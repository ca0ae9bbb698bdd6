package clipboard

import (
	"testing"

	"github.com/Iron-Ham/pasteimg/internal/errors"
	"github.com/Iron-Ham/pasteimg/internal/testutil"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	return testutil.PNG(t, testutil.Gradient(3, 2))
}

func TestSystem_Image(t *testing.T) {
	data := pngBytes(t)
	s := &System{
		init: func() error { return nil },
		read: func() []byte { return data },
	}

	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", img.Bounds())
	}
}

func TestSystem_Errors(t *testing.T) {
	tests := []struct {
		name      string
		init      func() error
		read      func() []byte
		wantCause error
		wantCodec bool
	}{
		{
			name:      "clipboard cannot be opened",
			init:      func() error { return errors.New("no display") },
			read:      func() []byte { return pngBytes(t) },
			wantCause: errors.ErrClipboardAccess,
		},
		{
			name:      "no image",
			init:      func() error { return nil },
			read:      func() []byte { return nil },
			wantCause: errors.ErrNoImage,
		},
		{
			name:      "undecodable image data",
			init:      func() error { return nil },
			read:      func() []byte { return []byte("garbage") },
			wantCodec: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &System{init: tt.init, read: tt.read}
			img, err := s.Image()
			if err == nil {
				t.Fatal("expected error")
			}
			if img != nil {
				t.Error("expected nil image on error")
			}
			if tt.wantCodec {
				var codecErr *errors.CodecError
				if !errors.As(err, &codecErr) {
					t.Fatalf("error type = %T, want *errors.CodecError", err)
				}
				return
			}
			var clipErr *errors.ClipboardError
			if !errors.As(err, &clipErr) {
				t.Fatalf("error type = %T, want *errors.ClipboardError", err)
			}
			if !errors.Is(err, tt.wantCause) {
				t.Errorf("expected cause %v, got %v", tt.wantCause, err)
			}
		})
	}
}

func TestSystem_InitOnce(t *testing.T) {
	calls := 0
	s := &System{
		init: func() error { calls++; return errors.New("no display") },
		read: func() []byte { return nil },
	}
	for i := 0; i < 3; i++ {
		_, _ = s.Image()
	}
	if calls != 1 {
		t.Errorf("init called %d times, want 1", calls)
	}
}
