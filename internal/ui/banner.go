package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the startup box showing the application name and version.
type Banner struct {
	Title   string // e.g., "Library Management System"
	Version string // e.g., "v0.3.0 (commit: abc1234)"
	Width   int    // Terminal width for responsive rendering
}

// NewBanner creates a banner sized to the current terminal
func NewBanner(title, version string) *Banner {
	return &Banner{
		Title:   title,
		Version: version,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (b *Banner) SetWidth(width int) *Banner {
	b.Width = width
	return b
}

// Render returns the styled banner as a string
func (b *Banner) Render() string {
	width := clampWidth(b.Width)

	titleLine := TitleStyle.Render("📖  " + b.Title)

	content := titleLine
	if b.Version != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, titleLine, MutedStyle.Render(b.Version))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 1).
		Width(width - 2). // Account for border characters
		Render(content)
}

// String implements fmt.Stringer
func (b *Banner) String() string {
	return b.Render()
}

// UsageHint returns the home-screen hint for the given GOOS value.
func UsageHint(goos string) string {
	var hint string
	switch goos {
	case "windows":
		hint = "Windows: use ↑/↓ keys in CMD/PowerShell, then Enter"
	case "darwin", "linux", "freebsd", "netbsd", "openbsd":
		hint = "macOS/Linux: use ↑/↓ keys in Terminal, then Enter"
	default:
		hint = "Use ↑/↓ keys to navigate and Enter to select"
	}

	lines := []string{
		AccentStyle.Render("  Home usage hint:"),
		Muted(hint),
		Muted("Open 'Hints / How it works' for a quick overview."),
	}
	return strings.Join(lines, "\n") + "\n"
}
