// Package console renders colorized terminal output.
package console

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles for report elements
var (
	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))

	identifierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	separatorStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("6"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))
)

// IsTerminal checks if f is a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTerminalWriter checks if w is a file attached to a terminal
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTerminal(f)
}

// Palette styles report elements, or leaves them untouched when disabled.
type Palette struct {
	enabled bool
}

// NewPalette creates a palette. Pass false for plain text output.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// Enabled reports whether the palette emits styles.
func (p Palette) Enabled() bool {
	return p.enabled
}

// Path styles a file path.
func (p Palette) Path(text string) string {
	return p.apply(pathStyle, text)
}

// Identifier styles an unused identifier.
func (p Palette) Identifier(text string) string {
	return p.apply(identifierStyle, text)
}

// Separator styles a field separator.
func (p Palette) Separator(text string) string {
	return p.apply(separatorStyle, text)
}

func (p Palette) apply(style lipgloss.Style, text string) string {
	if p.enabled {
		return style.Render(text)
	}
	return text
}

// applyStyle conditionally applies styling based on stderr TTY status
func applyStyle(style lipgloss.Style, text string) string {
	if IsTerminal(os.Stderr) {
		return style.Render(text)
	}
	return text
}

// FormatErrorMessage formats a simple error message (for stderr output)
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatWarningMessage formats a warning message
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}
