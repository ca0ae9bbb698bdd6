package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/pasteimg/internal/testutil"
)

func waitDone(t *testing.T, h *Handle, within time.Duration) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(within):
		t.Fatalf("indicator goroutine did not exit within %v", within)
	}
}

func frameCount(s string, frames []string) int {
	n := 0
	for _, f := range frames {
		n += strings.Count(s, f)
	}
	return n
}

func TestStart_FirstFrameIsSynchronous(t *testing.T) {
	var out testutil.SyncBuffer
	h := Start(&out, Options{Interval: time.Hour})
	defer h.Stop()

	got := ansi.Strip(out.String())
	want := "\r" + DefaultFrames()[0] + " " + DefaultLabel
	if got != want {
		t.Errorf("output after Start = %q, want %q", got, want)
	}
}

func TestStop_TerminatesWithinOneInterval(t *testing.T) {
	var out testutil.SyncBuffer
	interval := 20 * time.Millisecond
	h := Start(&out, Options{Interval: interval})

	time.Sleep(3 * interval)
	h.Stop()

	// One interval of sleep plus scheduling slack.
	waitDone(t, h, 10*interval)

	if !strings.HasSuffix(out.String(), clearSequence) {
		t.Errorf("line not erased on stop: %q", out.String())
	}
}

func TestStop_NoFrameAfterClear(t *testing.T) {
	frames := DefaultFrames()
	for i := 0; i < 20; i++ {
		var out testutil.SyncBuffer
		h := Start(&out, Options{Interval: time.Millisecond})
		time.Sleep(time.Duration(i%5) * time.Millisecond)

		h.Stop()
		h.Clear()
		marker := len(out.String())

		waitDone(t, h, time.Second)

		tail := out.String()[marker:]
		if n := frameCount(tail, frames); n != 0 {
			t.Fatalf("iteration %d: %d frame(s) written after Clear: %q", i, n, tail)
		}
		if strings.Contains(tail, DefaultLabel) {
			t.Fatalf("iteration %d: label written after Clear: %q", i, tail)
		}
	}
}

func TestAnimation_CyclesFrames(t *testing.T) {
	var out testutil.SyncBuffer
	frames := []string{"a", "b", "c"}
	h := Start(&out, Options{Interval: 2 * time.Millisecond, Frames: frames, Label: "L"})

	deadline := time.Now().Add(2 * time.Second)
	for strings.Count(out.String(), "\r") < 7 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	h.Stop()
	waitDone(t, h, time.Second)

	var drawn []string
	for _, part := range strings.Split(ansi.Strip(out.String()), "\r") {
		if part == "" {
			continue
		}
		drawn = append(drawn, part)
	}
	if len(drawn) < 7 {
		t.Fatalf("expected at least 7 frames, got %d: %q", len(drawn), drawn)
	}
	for i, line := range drawn {
		want := frames[i%len(frames)] + " L"
		if line != want {
			t.Fatalf("frame %d = %q, want %q", i, line, want)
		}
	}
}

func TestStop_Idempotent(t *testing.T) {
	var out testutil.SyncBuffer
	h := Start(&out, Options{Interval: time.Hour})
	h.Stop()
	h.Stop()
	h.Stop()

	if n := strings.Count(out.String(), clearSequence); n != 1 {
		t.Errorf("line erased %d times, want 1: %q", n, out.String())
	}
}

func TestStop_NothingWrittenAfterReturn(t *testing.T) {
	var out testutil.SyncBuffer
	h := Start(&out, Options{Interval: time.Millisecond})
	time.Sleep(5 * time.Millisecond)

	h.Stop()
	marker := len(out.String())
	waitDone(t, h, time.Second)

	if tail := out.String()[marker:]; tail != "" {
		t.Errorf("wrote %q after Stop returned", tail)
	}
}

func TestLine_FitsWidth(t *testing.T) {
	var out testutil.SyncBuffer
	h := Start(&out, Options{Interval: time.Hour, Width: 12})
	defer h.Stop()

	first := strings.TrimPrefix(out.String(), "\r")
	if w := lipgloss.Width(first); w > 11 {
		t.Errorf("rendered width = %d, want <= 11 (%q)", w, ansi.Strip(first))
	}
	if !strings.HasSuffix(ansi.Strip(first), "...") {
		t.Errorf("expected truncated line, got %q", ansi.Strip(first))
	}
}

func TestNewHandle_Defaults(t *testing.T) {
	h := newHandle(&bytes.Buffer{}, Options{})
	if h.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", h.interval, DefaultInterval)
	}
	if h.label != DefaultLabel {
		t.Errorf("label = %q, want %q", h.label, DefaultLabel)
	}
	if len(h.frames) != 10 {
		t.Errorf("len(frames) = %d, want 10", len(h.frames))
	}
	if h.width != 0 {
		t.Errorf("width = %d, want 0 for a non-terminal writer", h.width)
	}
}

func TestDefaultFrames_IsCopy(t *testing.T) {
	a := DefaultFrames()
	a[0] = "x"
	if DefaultFrames()[0] == "x" {
		t.Error("DefaultFrames shares its backing array")
	}
	if DefaultOptions().Interval != 120*time.Millisecond {
		t.Errorf("DefaultOptions().Interval = %v", DefaultOptions().Interval)
	}
}

func TestClear_ErasesLine(t *testing.T) {
	var out testutil.SyncBuffer
	h := Start(&out, Options{Interval: time.Hour})
	h.Stop()
	marker := len(out.String())

	h.Clear()
	if got := out.String()[marker:]; got != "\r\x1b[2K" {
		t.Errorf("Clear wrote %q, want carriage return and erase line", got)
	}
}
