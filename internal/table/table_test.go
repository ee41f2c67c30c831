package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muurk/bookshelf/internal/book"
	"github.com/muurk/bookshelf/internal/style"
)

func sampleRecords(t *testing.T) []book.Record {
	t.Helper()
	d, err := book.NewDigital("Clean Code", "Robert C. Martin", 2008, 4.5)
	if err != nil {
		t.Fatal(err)
	}
	p, err := book.NewPhysical("DP", "GoF", 1994, 395)
	if err != nil {
		t.Fatal(err)
	}
	return []book.Record{d, p}
}

func TestRenderEmpty(t *testing.T) {
	var out bytes.Buffer
	Render(&out, nil)

	got := out.String()
	if !strings.Contains(got, "The library is empty.") {
		t.Errorf("Render(nil) = %q, want empty message", got)
	}
	if strings.Contains(got, "─") || strings.Contains(got, "Title") {
		t.Errorf("Render(nil) should not print table lines, got %q", got)
	}
}

func TestRenderAlignment(t *testing.T) {
	var out bytes.Buffer
	Render(&out, sampleRecords(t))

	lines := strings.Split(out.String(), "\n")
	var tableLines []string
	for _, l := range lines {
		plain := style.Strip(l)
		if strings.HasPrefix(plain, "─") || strings.Contains(plain, "│") {
			tableLines = append(tableLines, l)
		}
	}

	// rule, header, rule, 2 rows, rule
	if len(tableLines) != 6 {
		t.Fatalf("table line count = %d, want 6:\n%s", len(tableLines), out.String())
	}

	width := style.VisibleLength(tableLines[0])
	for i, l := range tableLines {
		if got := style.VisibleLength(l); got != width {
			t.Errorf("line %d width = %d, want %d: %q", i, got, width, style.Strip(l))
		}
	}

	header := style.Strip(tableLines[1])
	for _, h := range Headers {
		if !strings.Contains(header, h) {
			t.Errorf("header %q missing column %q", header, h)
		}
	}

	// separator positions line up with the rule's junctions
	rule := []rune(style.Strip(tableLines[0]))
	row := []rune(style.Strip(tableLines[3]))
	for i, r := range rule {
		if r == '┬' && row[i] != '│' {
			t.Errorf("column junction at %d not aligned in row %q", i, string(row))
		}
	}
}

func TestRenderContent(t *testing.T) {
	var out bytes.Buffer
	Render(&out, sampleRecords(t))
	got := style.Strip(out.String())

	for _, want := range []string{
		"Library Collection",
		" 1 │  EBook  │ Clean Code │ Robert C. Martin │ 2008 │ 4.5 MB ",
		" 2 │  Print  │ DP         │ GoF              │ 1994 │ 395 pp ",
		"2 book(s) total",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q in:\n%s", want, got)
		}
	}
}

func TestNewFrameWidths(t *testing.T) {
	f := newFrame(sampleRecords(t))
	want := []int{1, 7, 10, 16, 4, 6}
	for i, w := range want {
		if f.widths[i] != w {
			t.Errorf("width[%d] (%s) = %d, want %d", i, Headers[i], f.widths[i], w)
		}
	}
}

func TestCells(t *testing.T) {
	cells := Cells(sampleRecords(t))
	if len(cells) != 2 {
		t.Fatalf("Cells() rows = %d, want 2", len(cells))
	}
	if cells[1][0] != "2" || cells[1][2] != "DP" || cells[1][5] != "395 pp" {
		t.Errorf("Cells()[1] = %q", cells[1])
	}
}
