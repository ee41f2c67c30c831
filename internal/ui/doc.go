// Package ui renders the decorative parts of the bookshelf shell: the
// startup banner, usage hints and one-line status messages.
//
// These components use Lipgloss and adapt to the terminal's color profile, so
// output written to a pipe is plain text. The core menu and table output do
// not go through this package; they use exact escape sequences from package
// style so that in-place redraw stays predictable.
package ui
