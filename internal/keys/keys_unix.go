//go:build !windows

package keys

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// rawReader toggles the terminal into raw mode around each key read.
type rawReader struct {
	fd int
	br *bufio.Reader
}

// NewTerminalReader returns the key reader for this platform. br must wrap in
// and is shared with any line-oriented reader of the same stream.
func NewTerminalReader(in *os.File, br *bufio.Reader) Reader {
	return &rawReader{fd: int(in.Fd()), br: br}
}

// ReadKey puts the terminal into raw mode, reads one key and restores the
// previous mode on every exit path. A restore failure is always reported.
func (r *rawReader) ReadKey() (key Key, err error) {
	state, err := term.MakeRaw(r.fd)
	if err != nil {
		return Key{}, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if rerr := term.Restore(r.fd, state); rerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrRestore, rerr))
		}
	}()

	return DecodeANSI(r.br)
}
