package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Gruvbox-inspired palette.
var (
	ColorGreen = lipgloss.Color("#8ec07c")
	ColorRed   = lipgloss.Color("#fb4934")
	ColorBlue  = lipgloss.Color("#83a598")
	ColorDim   = lipgloss.Color("#928374")
)

var (
	StyleCorrect   = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	StyleIncorrect = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleQuestion  = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleHint      = lipgloss.NewStyle().Foreground(ColorDim).Italic(true)
)

// VerdictText is the plain verdict line.
func VerdictText(correct bool) string {
	if correct {
		return "Correct"
	}
	return "Incorrect"
}

// ColorEnabled reports whether f is an interactive terminal and NO_COLOR
// is unset.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsInteractive(f)
}

// IsInteractive reports whether f is a terminal, including Cygwin/MSYS ptys.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
