// Package style holds the terminal escape sequences used by bookshelf and a
// handful of pure helpers for wrapping, measuring and padding styled text.
//
// Measuring is ANSI-aware: only SGR sequences of the form
//
//	ESC [ <digits> (; <digits>)* m
//
// are ignored, so cursor-control sequences such as HideCursor still count.
// Width is reported in terminal cells via go-runewidth, which keeps wide
// glyphs (CJK, most emoji) aligned in tables.
//
// Nothing in this package writes to the terminal or keeps state.
package style
