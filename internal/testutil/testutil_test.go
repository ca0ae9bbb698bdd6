package testutil

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestGradient(t *testing.T) {
	img := Gradient(4, 3)
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 4x3", b)
	}
	if img.NRGBAAt(0, 0) == img.NRGBAAt(3, 2) {
		t.Error("corner pixels should differ")
	}
	if a := img.NRGBAAt(2, 1).A; a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}

	// Degenerate sizes must not divide by zero.
	_ = Gradient(1, 1)
}

func TestPNG(t *testing.T) {
	data := PNG(t, Gradient(5, 5))
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 5 {
		t.Errorf("width = %d, want 5", img.Bounds().Dx())
	}
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got := ListDir(t, dir)
	if len(got) != 2 || got[0] != "a.png" || got[1] != "b.jpg" {
		t.Errorf("ListDir() = %v, want [a.png b.jpg]", got)
	}
}

func TestSyncBuffer(t *testing.T) {
	var buf SyncBuffer
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = buf.Write([]byte("x"))
		}()
	}
	wg.Wait()

	if got := buf.String(); got != "xxxxxxxx" {
		t.Errorf("String() = %q, want 8 bytes", got)
	}
}
