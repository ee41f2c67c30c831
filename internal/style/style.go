package style

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SGR codes
const (
	Reset = "\x1b[0m"
	Bold  = "\x1b[1m"
	Dim   = "\x1b[2m"
)

// Foreground colors (bright variants)
const (
	Red     = "\x1b[91m"
	Green   = "\x1b[92m"
	Yellow  = "\x1b[93m"
	Blue    = "\x1b[94m"
	Magenta = "\x1b[95m"
	Cyan    = "\x1b[96m"
	White   = "\x1b[97m"
)

// BgBlue is the only background color used by the catalog.
const BgBlue = "\x1b[44m"

// Cursor and line control
const (
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
	ClearLine  = "\x1b[2K"
)

// sgrPattern matches ESC '[' digits (';' digits)* 'm'.
var sgrPattern = regexp.MustCompile(`\x1b\[[0-9]+(?:;[0-9]+)*m`)

// Wrap surrounds text with the given codes followed by a single Reset.
func Wrap(text string, codes ...string) string {
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(text)
	b.WriteString(Reset)
	return b.String()
}

// CursorUp returns the sequence moving the cursor up n lines, or "" for n <= 0.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dA", n)
}

// Strip removes all SGR style codes from text.
func Strip(text string) string {
	return sgrPattern.ReplaceAllString(text, "")
}

// cellWidth measures East-Asian-ambiguous runes as one column whatever the
// locale says, so widths do not depend on LANG or LC_ALL.
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

// VisibleLength returns the on-screen width of text, ignoring style codes.
func VisibleLength(text string) int {
	return cellWidth.StringWidth(Strip(text))
}

// Pad appends spaces until text is at least width columns wide.
// Text that is already wider is returned unchanged.
func Pad(text string, width int) string {
	gap := width - VisibleLength(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}
