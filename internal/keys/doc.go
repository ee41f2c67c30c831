// Package keys turns raw terminal input into logical keypresses.
//
// A Reader returns exactly one Key per call and blocks until it arrives.
// There is no timeout and no cancellation.
//
// # Platforms
//
// Two implementations exist and the build selects one:
//
//   - POSIX terminals (keys_unix.go): golang.org/x/term switches the file
//     descriptor into raw mode for the duration of one read and restores the
//     previous state in a deferred call. Arrow keys arrive as ESC [ A and
//     ESC [ B; see DecodeANSI.
//   - Windows consoles (keys_windows.go): the C runtime's _getch reports arrow
//     keys as a 0x00 or 0xE0 prefix followed by a scan code; see DecodeConsole.
//
// Both decoders are ordinary functions over byte readers so they can be
// exercised on any platform.
//
// # Unrecognized input
//
// Unknown or truncated escape sequences decode to Kind Other instead of
// failing. Callers decide what Other means: the menu ignores it, apart from
// Ctrl-C (see Key.IsInterrupt).
package keys
