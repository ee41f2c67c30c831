package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the catalog shell
var (
	PrimaryColor = lipgloss.Color("#D75FD7") // Magenta - banner, section titles
	AccentColor  = lipgloss.Color("#5FD7FF") // Cyan - usage hints, prompts
	SuccessColor = lipgloss.Color("#43BF6D") // Green - confirmations
	WarningColor = lipgloss.Color("#FFD75F") // Yellow - empty results, back
	ErrorColor   = lipgloss.Color("#FF5555") // Red - destructive actions
	MutedColor   = lipgloss.Color("#808080") // Gray - secondary info
)

// Layout constants
const (
	MinTerminalWidth = 40 // Banner never narrower than this
	MaxContentWidth  = 72 // Banner never wider than this
)

// Shared styles
var (
	// TitleStyle is for section titles (e.g., "System Hints")
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// AccentStyle is for emphasized hint lines
	AccentStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// MutedStyle is for secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// SuccessStyle is for completed actions
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle is for notices that are not errors
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle is for failures reported to the operator
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return clampWidth(width)
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// Success renders a confirmation line such as `  ✓ "DP" added successfully.`
func Success(msg string) string {
	return SuccessStyle.Render("  ✓ " + msg)
}

// Notice renders a neutral warning line.
func Notice(msg string) string {
	return WarningStyle.Render("  " + msg)
}

// Failure renders an error line.
func Failure(msg string) string {
	return ErrorStyle.Render("  ✗ " + msg)
}

// Muted renders secondary text with two spaces of indent.
func Muted(msg string) string {
	return MutedStyle.Render("  " + msg)
}
