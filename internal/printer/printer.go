package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// SetNoColor disables ANSI styling for all subsequent output when
// noColor is true. NO_COLOR in the environment has the same effect.
func SetNoColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Print functions write styled text to w followed by a newline.

// PrintSuccess writes text with success (green) styling.
func PrintSuccess(w io.Writer, text string) {
	fmt.Fprintln(w, Success(text))
}

// PrintError writes text with error (red) styling.
func PrintError(w io.Writer, text string) {
	fmt.Fprintln(w, Error(text))
}

// PrintWarning writes text with warning (yellow) styling.
func PrintWarning(w io.Writer, text string) {
	fmt.Fprintln(w, Warning(text))
}

// PrintInfo writes text with info (cyan) styling.
func PrintInfo(w io.Writer, text string) {
	fmt.Fprintln(w, Info(text))
}
