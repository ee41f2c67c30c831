package menu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/bookshelf/internal/keys"
	"github.com/muurk/bookshelf/internal/style"
)

// scriptedKeys replays a fixed key sequence, then fails.
type scriptedKeys struct {
	keys []keys.Key
	pos  int
}

var errScriptDone = errors.New("script exhausted")

func (s *scriptedKeys) ReadKey() (keys.Key, error) {
	if s.pos >= len(s.keys) {
		return keys.Key{}, errScriptDone
	}
	k := s.keys[s.pos]
	s.pos++
	return k, nil
}

var (
	up      = keys.Key{Kind: keys.Up}
	down    = keys.Key{Kind: keys.Down}
	confirm = keys.Key{Kind: keys.Confirm}
	ctrlC   = keys.Key{Kind: keys.Other, Char: 0x03}
)

func run(t *testing.T, options []string, seq ...keys.Key) (int, string, error) {
	t.Helper()
	var out bytes.Buffer
	idx, err := New(&out, &scriptedKeys{keys: seq}).Run("Pick one:", options)
	return idx, out.String(), err
}

func TestRunSelection(t *testing.T) {
	opts := []string{"a", "b", "c"}

	tests := []struct {
		name string
		seq  []keys.Key
		want int
	}{
		{"confirm immediately", []keys.Key{confirm}, 0},
		{"down once", []keys.Key{down, confirm}, 1},
		{"up wraps to last", []keys.Key{up, confirm}, 2},
		{"down wraps to first", []keys.Key{down, down, down, confirm}, 0},
		{"other keys ignored", []keys.Key{{Kind: keys.Other, Char: 'x'}, down, {Kind: keys.Other, Char: 0x1b}, confirm}, 1},
		{"up and down cancel", []keys.Key{down, down, up, confirm}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := run(t, opts, tt.seq...)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Run() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelectionStaysInRange(t *testing.T) {
	for n := 1; n <= 6; n++ {
		sel := selection{count: n}
		// deterministic pseudo-random walk
		for i := 0; i < 200; i++ {
			if (i*7+n)%3 == 0 {
				sel.apply(up)
			} else {
				sel.apply(down)
			}
			if sel.index < 0 || sel.index >= n {
				t.Fatalf("n=%d step %d: index %d out of range", n, i, sel.index)
			}
		}
	}
}

func TestSelectionBoundaries(t *testing.T) {
	sel := selection{count: 4}
	sel.apply(up)
	if sel.index != 3 {
		t.Errorf("up at 0 = %d, want 3", sel.index)
	}
	sel.apply(down)
	if sel.index != 0 {
		t.Errorf("down at 3 = %d, want 0", sel.index)
	}
}

func TestRunSingleOption(t *testing.T) {
	got, _, err := run(t, []string{"only"}, up, down, up, confirm)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Run() = %d, want 0", got)
	}
}

func TestRunNoOptions(t *testing.T) {
	_, out, err := run(t, nil, confirm)
	if !errors.Is(err, ErrNoOptions) {
		t.Errorf("Run() error = %v, want ErrNoOptions", err)
	}
	if out != "" {
		t.Errorf("Run() with no options should not draw, got %q", out)
	}
}

func TestRunRestoresCursor(t *testing.T) {
	tests := []struct {
		name    string
		seq     []keys.Key
		wantErr error
	}{
		{"confirm", []keys.Key{down, confirm}, nil},
		{"interrupt", []keys.Key{down, ctrlC}, ErrInterrupted},
		{"reader error", []keys.Key{down}, errScriptDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := run(t, []string{"a", "b"}, tt.seq...)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(out, style.HideCursor) {
				t.Error("cursor should be hidden while the menu runs")
			}
			if !strings.HasSuffix(out, style.ShowCursor) {
				t.Errorf("output should end with ShowCursor, got tail %q", tail(out))
			}
		})
	}
}

func TestRunRedrawsInPlace(t *testing.T) {
	opts := []string{"one", "two", "three"}
	_, out, err := run(t, opts, down, up, confirm)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.HasPrefix(out, "Pick one:\n") {
		t.Errorf("title should be printed first, got %q", out[:min(len(out), 20)])
	}
	if n := strings.Count(out, "Pick one:"); n != 1 {
		t.Errorf("title printed %d times, want 1", n)
	}

	// one initial frame + one redraw per navigation key
	if n := strings.Count(out, style.CursorUp(len(opts))); n != 2 {
		t.Errorf("cursor-up count = %d, want 2", n)
	}
	if n := strings.Count(out, style.ClearLine); n != 3*len(opts) {
		t.Errorf("clear-line count = %d, want %d", n, 3*len(opts))
	}
}

func TestDrawFrame(t *testing.T) {
	var b bytes.Buffer
	drawFrame(&b, []string{"x", "y"}, 1, true)

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("drawFrame wrote %d lines, want 2", len(lines))
	}
	if lines[0] != style.ClearLine+style.Dim+"    x"+style.Reset {
		t.Errorf("unselected line = %q", lines[0])
	}
	if lines[1] != style.ClearLine+style.Wrap("  ▸ y", style.Bold, style.Cyan) {
		t.Errorf("selected line = %q", lines[1])
	}
	if strings.Contains(b.String(), "\x1b[2A") {
		t.Error("first frame should not move the cursor up")
	}

	b.Reset()
	drawFrame(&b, []string{"x", "y"}, 0, false)
	if !strings.HasPrefix(b.String(), "\x1b[2A") {
		t.Errorf("redraw should start with cursor-up, got %q", b.String())
	}
}

func tail(s string) string {
	if len(s) > 16 {
		return s[len(s)-16:]
	}
	return s
}
