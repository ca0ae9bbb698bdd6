// Package errors provides the error definitions used across pasteimg. It
// defines sentinel errors, one error type per failure category of a capture,
// and classification helpers that let the CLI decide between aborting and
// warning.
//
// # Error Types
//
// Each stage of a capture has its own error type:
//   - ClipboardError: the clipboard could not be opened or held no image
//   - CodecError: an image could not be encoded or decoded
//   - FilesystemError: the output file could not be written
//   - RevealError: the file manager could not be asked to show the file
//
// Every type except RevealError is fatal. RevealError carries
// SeverityWarning and never changes the exit code.
//
// # Usage
//
//	err := errors.NewClipboardError("no image found in clipboard", errors.ErrNoImage)
//
//	if errors.Is(err, errors.ErrNoImage) { ... }
//
//	var fsErr *errors.FilesystemError
//	if errors.As(err, &fsErr) {
//	    fmt.Println(fsErr.Path)
//	}
//
//	if errors.IsFatal(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that are reported but do not abort a capture.
	SeverityWarning
	// SeverityError is for errors that abort a capture.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Clipboard sentinel errors
var (
	// ErrClipboardAccess indicates the platform clipboard could not be opened.
	ErrClipboardAccess = New("clipboard unavailable")
	// ErrNoImage indicates the clipboard holds no image.
	ErrNoImage = New("no image found in clipboard")
)

// Codec sentinel errors
var (
	// ErrNilImage indicates an encoder was handed a nil image.
	ErrNilImage = New("image is nil")
	// ErrInvalidQuality indicates a lossy quality outside (0, 100].
	ErrInvalidQuality = New("quality must be in (0, 100]")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// CaptureError is the interface shared by all pasteimg error types.
type CaptureError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity
}

// baseError provides common functionality for all error types.
type baseError struct {
	message  string
	cause    error
	severity Severity
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// format renders "<prefix> [k=v, ...]: <message>[: <cause>]".
func (e *baseError) format(prefix string, parts []string) string {
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(parts, ", "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// -----------------------------------------------------------------------------
// Capture Errors
// -----------------------------------------------------------------------------

// ClipboardError represents a failure to obtain an image from the clipboard.
// The cause is ErrClipboardAccess when the clipboard subsystem itself could
// not be opened and ErrNoImage when it opened but held no image.
//
// Example:
//
//	err := errors.NewClipboardError("no image found in clipboard", errors.ErrNoImage)
//	fmt.Println(err) // "clipboard error: no image found in clipboard"
type ClipboardError struct {
	baseError
}

// NewClipboardError creates a new ClipboardError.
func NewClipboardError(message string, cause error) *ClipboardError {
	return &ClipboardError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: SeverityError,
		},
	}
}

// Error returns the formatted error message. A cause equal to the message
// is not repeated.
func (e *ClipboardError) Error() string {
	if e.cause != nil && e.cause.Error() == e.message {
		return "clipboard error: " + e.message
	}
	return e.format("clipboard error", nil)
}

// Is checks if this error matches the target.
func (e *ClipboardError) Is(target error) bool {
	if _, ok := target.(*ClipboardError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// CodecError represents an image encode or decode failure.
//
// Example:
//
//	err := errors.NewCodecError("failed to encode image", baseErr).
//	    WithStage("encode").WithFormat("jpg")
//	fmt.Println(err) // "codec error [stage=encode, format=jpg]: failed to encode image: ..."
type CodecError struct {
	baseError
	Stage  string // "encode" or "decode"
	Format string // file extension of the format involved
}

// NewCodecError creates a new CodecError.
func NewCodecError(message string, cause error) *CodecError {
	return &CodecError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: SeverityError,
		},
	}
}

// WithStage records whether encoding or decoding failed.
func (e *CodecError) WithStage(stage string) *CodecError {
	e.Stage = stage
	return e
}

// WithFormat records the image format involved.
func (e *CodecError) WithFormat(format string) *CodecError {
	e.Format = format
	return e
}

// Error returns the formatted error message.
func (e *CodecError) Error() string {
	var parts []string
	if e.Stage != "" {
		parts = append(parts, fmt.Sprintf("stage=%s", e.Stage))
	}
	if e.Format != "" {
		parts = append(parts, fmt.Sprintf("format=%s", e.Format))
	}
	return e.format("codec error", parts)
}

// Is checks if this error matches the target.
func (e *CodecError) Is(target error) bool {
	if _, ok := target.(*CodecError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// FilesystemError represents a failure to write the output file. Bytes may
// or may not have reached Path; no cleanup is attempted.
//
// Example:
//
//	err := errors.NewFilesystemError("failed to write image", ioErr).WithPath("/x/abcde.png")
type FilesystemError struct {
	baseError
	Path string
}

// NewFilesystemError creates a new FilesystemError.
func NewFilesystemError(message string, cause error) *FilesystemError {
	return &FilesystemError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: SeverityError,
		},
	}
}

// WithPath adds the target path to the error context.
func (e *FilesystemError) WithPath(path string) *FilesystemError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *FilesystemError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	return e.format("filesystem error", parts)
}

// Is checks if this error matches the target.
func (e *FilesystemError) Is(target error) bool {
	if _, ok := target.(*FilesystemError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// RevealError represents a failed request to show a saved file in the
// platform file manager. It is a warning, never fatal.
type RevealError struct {
	baseError
	Path string
}

// NewRevealError creates a new RevealError.
func NewRevealError(message string, cause error) *RevealError {
	return &RevealError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: SeverityWarning,
		},
	}
}

// WithPath adds the revealed path to the error context.
func (e *RevealError) WithPath(path string) *RevealError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *RevealError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	return e.format("reveal error", parts)
}

// Is checks if this error matches the target.
func (e *RevealError) Is(target error) bool {
	if _, ok := target.(*RevealError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement CaptureError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var captureErr CaptureError
	if As(err, &captureErr) {
		return captureErr.Severity()
	}

	return SeverityError
}

// IsFatal returns true if the error should abort the run with a non-zero
// exit code. Unknown errors are fatal.
func IsFatal(err error) bool {
	return err != nil && GetSeverity(err) >= SeverityError
}

// Wrap wraps an error with additional context message.
// Unlike constructing a new error type, this preserves the wrapped type for As.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
