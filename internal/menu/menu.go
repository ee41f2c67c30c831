package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muurk/bookshelf/internal/keys"
	"github.com/muurk/bookshelf/internal/logging"
	"github.com/muurk/bookshelf/internal/style"
)

var (
	// ErrNoOptions is returned when Run is called with an empty option list.
	ErrNoOptions = errors.New("menu has no options")
	// ErrInterrupted is returned when the operator presses Ctrl-C.
	ErrInterrupted = errors.New("menu interrupted")
)

// Menu presents arrow-key menus on an output stream.
type Menu struct {
	out  io.Writer
	keys keys.Reader
}

// New creates a menu that draws to out and reads keys from kr.
func New(out io.Writer, kr keys.Reader) *Menu {
	return &Menu{out: out, keys: kr}
}

// selection is the state of one running menu.
type selection struct {
	index int
	count int
}

// apply moves the selection for navigation keys, wrapping at both ends.
func (s *selection) apply(k keys.Key) {
	switch k.Kind {
	case keys.Up:
		s.index = (s.index - 1 + s.count) % s.count
	case keys.Down:
		s.index = (s.index + 1) % s.count
	}
}

// Run prints title, lets the operator pick one of options and returns its
// index. The cursor is hidden while the menu is active and shown again on
// every exit path.
func (m *Menu) Run(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	sel := selection{count: len(options)}

	fmt.Fprintln(m.out, title)
	io.WriteString(m.out, style.HideCursor)
	defer io.WriteString(m.out, style.ShowCursor)

	drawFrame(m.out, options, sel.index, true)

	for {
		key, err := m.keys.ReadKey()
		if err != nil {
			return 0, fmt.Errorf("failed to read key: %w", err)
		}
		logging.LogKey(key.Kind.String(), key.Char, sel.index)

		switch {
		case key.Kind == keys.Confirm:
			return sel.index, nil
		case key.IsInterrupt():
			return 0, ErrInterrupted
		}

		sel.apply(key)
		drawFrame(m.out, options, sel.index, false)
	}
}

// drawFrame writes one line per option. Every frame after the first moves
// the cursor back over the previous one so the menu height stays constant.
func drawFrame(w io.Writer, options []string, selected int, first bool) {
	var b strings.Builder
	if !first {
		b.WriteString(style.CursorUp(len(options)))
	}
	for i, opt := range options {
		b.WriteString(style.ClearLine)
		if i == selected {
			b.WriteString(style.Wrap("  ▸ "+opt, style.Bold, style.Cyan))
		} else {
			b.WriteString(style.Dim + "    " + opt + style.Reset)
		}
		b.WriteString("\n")
	}
	io.WriteString(w, b.String())
}
