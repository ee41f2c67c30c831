//go:build windows

package keys

import (
	"bufio"
	"os"

	"golang.org/x/sys/windows"
)

var procGetch = windows.NewLazySystemDLL("msvcrt.dll").NewProc("_getch")

// getch adapts the C runtime's _getch to io.ByteReader. _getch reads
// straight from the console, unbuffered and unechoed, so there is no input
// mode to toggle or restore.
type getch struct{}

func (getch) ReadByte() (byte, error) {
	if err := procGetch.Find(); err != nil {
		return 0, err
	}
	ret, _, _ := procGetch.Call()
	return byte(ret), nil
}

type consoleReader struct {
	src getch
}

// NewTerminalReader returns the key reader for this platform. The console
// API bypasses stdin buffering, so in and br are unused.
func NewTerminalReader(in *os.File, br *bufio.Reader) Reader {
	return &consoleReader{}
}

// ReadKey blocks until the console delivers one key.
func (r *consoleReader) ReadKey() (Key, error) {
	return DecodeConsole(r.src)
}
