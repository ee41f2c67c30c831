package keys

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDecodeANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"carriage return", "\r", Key{Kind: Confirm}},
		{"newline", "\n", Key{Kind: Confirm}},
		{"arrow up", "\x1b[A", Key{Kind: Up}},
		{"arrow down", "\x1b[B", Key{Kind: Down}},
		{"arrow right", "\x1b[C", Key{Kind: Other, Char: esc}},
		{"alt-x", "\x1bxy", Key{Kind: Other, Char: esc}},
		{"truncated escape", "\x1b[", Key{Kind: Other, Char: esc}},
		{"bare escape", "\x1b", Key{Kind: Other, Char: esc}},
		{"letter", "q", Key{Kind: Other, Char: 'q'}},
		{"multibyte rune", "ü", Key{Kind: Other, Char: 'ü'}},
		{"ctrl-c", "\x03", Key{Kind: Other, Char: interrupt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeANSI(bufio.NewReader(strings.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("DecodeANSI() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeANSI(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeANSIConsumesOneKeyPerCall(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("\x1b[Ak\x1b[B\r"))
	want := []Key{{Kind: Up}, {Kind: Other, Char: 'k'}, {Kind: Down}, {Kind: Confirm}}

	for i, w := range want {
		got, err := DecodeANSI(br)
		if err != nil {
			t.Fatalf("key %d: error = %v", i, err)
		}
		if got != w {
			t.Errorf("key %d = %+v, want %+v", i, got, w)
		}
	}

	if _, err := DecodeANSI(br); !errors.Is(err, io.EOF) {
		t.Errorf("DecodeANSI() on drained input error = %v, want io.EOF", err)
	}
}

func TestDecodeConsole(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  Key
	}{
		{"carriage return", []byte{'\r'}, Key{Kind: Confirm}},
		{"newline", []byte{'\n'}, Key{Kind: Confirm}},
		{"e0 up", []byte{0xe0, 'H'}, Key{Kind: Up}},
		{"e0 down", []byte{0xe0, 'P'}, Key{Kind: Down}},
		{"00 up", []byte{0x00, 'H'}, Key{Kind: Up}},
		{"00 down", []byte{0x00, 'P'}, Key{Kind: Down}},
		{"e0 left", []byte{0xe0, 'K'}, Key{Kind: Other, Char: 0xe0}},
		{"truncated prefix", []byte{0x00}, Key{Kind: Other, Char: 0x00}},
		{"letter", []byte{'a'}, Key{Kind: Other, Char: 'a'}},
		{"high byte", []byte{0xc3}, Key{Kind: Other, Char: '�'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeConsole(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("DecodeConsole() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeConsole(%v) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeConsoleLookaheadIsOneByte(t *testing.T) {
	r := bytes.NewReader([]byte{0xe0, 'H', 'x'})
	if k, _ := DecodeConsole(r); k.Kind != Up {
		t.Fatalf("first key = %+v, want Up", k)
	}
	if k, _ := DecodeConsole(r); k != (Key{Kind: Other, Char: 'x'}) {
		t.Errorf("second key = %+v, want Other('x')", k)
	}
}

func TestKeyIsInterrupt(t *testing.T) {
	if !(Key{Kind: Other, Char: 0x03}).IsInterrupt() {
		t.Error("Ctrl-C should be an interrupt")
	}
	if (Key{Kind: Other, Char: 'c'}).IsInterrupt() {
		t.Error("'c' should not be an interrupt")
	}
	if (Key{Kind: Confirm}).IsInterrupt() {
		t.Error("Confirm should not be an interrupt")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{Other: "other", Up: "up", Down: "down", Confirm: "confirm", Kind(9): "Kind(9)"}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
