package keys

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Kind is the logical class of a keypress.
type Kind int

const (
	// Other is any key without a navigation meaning; Key.Char holds it.
	Other Kind = iota
	// Up is the up arrow.
	Up
	// Down is the down arrow.
	Down
	// Confirm is Enter or Return.
	Confirm
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case Other:
		return "other"
	case Up:
		return "up"
	case Down:
		return "down"
	case Confirm:
		return "confirm"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Key is one decoded keypress.
type Key struct {
	Kind Kind
	Char rune // set for Other
}

const (
	esc       = 0x1b
	interrupt = 0x03
)

// IsInterrupt reports whether the key is Ctrl-C delivered as a raw byte.
func (k Key) IsInterrupt() bool {
	return k.Kind == Other && k.Char == interrupt
}

// Reader yields one logical key per call, blocking until it is available.
type Reader interface {
	ReadKey() (Key, error)
}

// DecodeANSI decodes the next key from a POSIX terminal byte stream.
// An escape byte is followed by exactly two lookahead bytes; anything other
// than "[A" or "[B", including a truncated read, yields Other(ESC).
func DecodeANSI(r *bufio.Reader) (Key, error) {
	ch, _, err := r.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch ch {
	case '\r', '\n':
		return Key{Kind: Confirm}, nil
	case esc:
		var seq [2]byte
		if _, err := io.ReadFull(r, seq[:]); err != nil {
			return Key{Kind: Other, Char: esc}, nil
		}
		switch string(seq[:]) {
		case "[A":
			return Key{Kind: Up}, nil
		case "[B":
			return Key{Kind: Down}, nil
		}
		return Key{Kind: Other, Char: esc}, nil
	}

	return Key{Kind: Other, Char: ch}, nil
}

// DecodeConsole decodes the next key from a legacy console byte stream, where
// arrow keys arrive as a 0x00 or 0xE0 prefix followed by a single scan code.
func DecodeConsole(r io.ByteReader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case '\r', '\n':
		return Key{Kind: Confirm}, nil
	case 0x00, 0xe0:
		code, err := r.ReadByte()
		if err != nil {
			return Key{Kind: Other, Char: rune(b)}, nil
		}
		switch code {
		case 'H':
			return Key{Kind: Up}, nil
		case 'P':
			return Key{Kind: Down}, nil
		}
		return Key{Kind: Other, Char: rune(b)}, nil
	}

	if b >= utf8.RuneSelf {
		return Key{Kind: Other, Char: utf8.RuneError}, nil
	}
	return Key{Kind: Other, Char: rune(b)}, nil
}

// ErrRestore marks a failure to return the terminal to its previous mode.
var ErrRestore = errors.New("failed to restore terminal mode")
