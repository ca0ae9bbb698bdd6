// Package progress draws a single-line spinner while a blocking capture runs.
//
// The indicator has two states, running and stopped, and moves from the
// first to the second exactly once. [Start] draws the first frame before it
// returns, then a background goroutine redraws every interval until the
// stop flag is set and exits. The transition erases the line once. Stop does
// not wait for the goroutine; it only waits for a frame write already in
// progress, so nothing the indicator writes can land after Stop returns.
package progress

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/pasteimg/internal/logging"
	"github.com/Iron-Ham/pasteimg/internal/tui/styles"
	"github.com/Iron-Ham/pasteimg/internal/util"
)

// Defaults for Options.
const (
	DefaultInterval = 120 * time.Millisecond
	DefaultLabel    = "Processing clipboard image"
)

// clearSequence returns the cursor to column 0 and erases the line.
const clearSequence = "\r" + ansi.EraseEntireLine

// Options configures an indicator.
type Options struct {
	Label    string
	Interval time.Duration
	// Frames is the cyclic animation. Defaults to the braille MiniDot set.
	Frames []string
	// Width caps the visible line width. Zero detects the terminal width
	// when the writer is a terminal and leaves the line uncapped otherwise.
	Width  int
	Logger *logging.Logger
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{
		Label:    DefaultLabel,
		Interval: DefaultInterval,
		Frames:   DefaultFrames(),
	}
}

// DefaultFrames returns a copy of the braille spinner frames.
func DefaultFrames() []string {
	return append([]string(nil), spinner.MiniDot.Frames...)
}

// Handle is the shared stop signal between the caller and the animation
// goroutine. The caller is the only writer of the stop transition.
type Handle struct {
	w        io.Writer
	label    string
	frames   []string
	interval time.Duration
	width    int
	logger   *logging.Logger

	stopped atomic.Bool
	mu      sync.Mutex // serializes writes to w
	done    chan struct{}
	drawn   int
}

// Start draws the first frame to w synchronously and starts the animation.
func Start(w io.Writer, opts Options) *Handle {
	h := newHandle(w, opts)

	h.mu.Lock()
	h.draw(0)
	h.mu.Unlock()

	h.logger.Debug("indicator started", "interval_ms", h.interval.Milliseconds(), "width", h.width)
	go h.run()
	return h
}

func newHandle(w io.Writer, opts Options) *Handle {
	if opts.Label == "" {
		opts.Label = DefaultLabel
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if len(opts.Frames) == 0 {
		opts.Frames = DefaultFrames()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.Width == 0 {
		opts.Width = terminalWidth(w)
	}

	return &Handle{
		w:        w,
		label:    opts.Label,
		frames:   opts.Frames,
		interval: opts.Interval,
		width:    opts.Width,
		logger:   opts.Logger,
		done:     make(chan struct{}),
	}
}

// run is the animation loop. It exits within one interval of Stop.
func (h *Handle) run() {
	defer close(h.done)

	frame := 1
	for !h.stopped.Load() {
		time.Sleep(h.interval)

		h.mu.Lock()
		if h.stopped.Load() {
			h.mu.Unlock()
			break
		}
		h.draw(frame)
		h.mu.Unlock()
		frame++
	}
}

// draw writes frame n. Callers hold h.mu.
func (h *Handle) draw(n int) {
	_, _ = io.WriteString(h.w, "\r"+h.line(n))
	h.drawn++
}

// line renders frame n, fitted to the handle's width.
func (h *Handle) line(n int) string {
	frame := h.frames[n%len(h.frames)]
	line := styles.Accent.Render(frame) + " " + styles.Bold.Render(h.label)
	if h.width > 0 {
		// Leave the last column free so the terminal never auto-wraps.
		line = util.TruncateANSI(line, h.width-1)
	}
	return line
}

// Stop sets the stop signal and erases the line. It returns once no frame
// write is in progress and does not wait for the goroutine to exit. Calling
// Stop more than once is harmless.
func (h *Handle) Stop() {
	h.mu.Lock()
	if h.stopped.Swap(true) {
		h.mu.Unlock()
		return
	}
	_, _ = io.WriteString(h.w, clearSequence)
	drawn := h.drawn
	h.mu.Unlock()

	h.logger.Debug("indicator stopped", "frames", drawn)
}

// Clear erases the indicator line. Call it after Stop and before printing
// the result.
func (h *Handle) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = io.WriteString(h.w, clearSequence)
}

// Done is closed when the animation goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
