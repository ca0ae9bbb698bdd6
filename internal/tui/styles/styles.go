// Package styles holds the lipgloss styles pasteimg renders terminal output
// with. Styles are immutable values; rendering never mutates shared state.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	SuccessColor = lipgloss.Color("#10B981") // Green
	ErrorColor   = lipgloss.Color("#F87171") // Red (red-400)
	WarningColor = lipgloss.Color("#FBBF24") // Yellow
	AccentColor  = lipgloss.Color("#22D3EE") // Cyan (cyan-400)
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray

	// Convenience styles for colors
	Success = lipgloss.NewStyle().Foreground(SuccessColor)
	Error   = lipgloss.NewStyle().Foreground(ErrorColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Accent  = lipgloss.NewStyle().Foreground(AccentColor)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
	Bold    = lipgloss.NewStyle().Bold(true)

	// Saved file paths
	Path = Accent.Bold(true)
)

// Status kinds rendered by the presenter.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusWarning = "warning"
)

// StatusStyle returns the style for a status kind.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusSuccess:
		return Success
	case StatusError:
		return Error
	case StatusWarning:
		return Warning
	default:
		return Muted
	}
}

// StatusIcon returns the leading symbol for a status kind.
func StatusIcon(status string) string {
	switch status {
	case StatusSuccess:
		return "✔"
	case StatusError:
		return "✖"
	case StatusWarning:
		return "!"
	default:
		return "•"
	}
}

// StatusPrefix renders the colored icon for a status kind.
func StatusPrefix(status string) string {
	return StatusStyle(status).Render(StatusIcon(status))
}

// RenderPath styles a file path.
func RenderPath(p string) string {
	return Path.Render(p)
}
