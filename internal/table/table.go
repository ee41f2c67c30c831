package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muurk/bookshelf/internal/book"
	"github.com/muurk/bookshelf/internal/style"
)

// Headers are the column titles, in display order.
var Headers = []string{"#", "Type", "Title", "Author", "Year", "Detail"}

const cellSeparator = " │ "

// EmptyMessage is printed instead of a table when there are no records.
var EmptyMessage = style.Wrap("\n  The library is empty.\n", style.Yellow)

// frame is the cell matrix and column widths for one render.
type frame struct {
	cells  [][]string
	widths []int
}

// Cells returns one row of display cells per record. Cells may contain
// style codes.
func Cells(records []book.Record) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			r.Tag(),
			r.Title(),
			r.Author(),
			strconv.Itoa(r.Year()),
			r.Detail(),
		}
	}
	return rows
}

func newFrame(records []book.Record) frame {
	f := frame{cells: Cells(records), widths: make([]int, len(Headers))}
	for i, h := range Headers {
		f.widths[i] = style.VisibleLength(h)
	}
	for _, row := range f.cells {
		for i, cell := range row {
			f.widths[i] = max(f.widths[i], style.VisibleLength(cell))
		}
	}
	return f
}

func (f frame) rule() string {
	segments := make([]string, len(f.widths))
	for i, w := range f.widths {
		segments[i] = strings.Repeat("─", w)
	}
	return style.Dim + "─" + strings.Join(segments, "─┬─") + "─" + style.Reset
}

func (f frame) header() string {
	cells := make([]string, len(Headers))
	for i, h := range Headers {
		cells[i] = style.Wrap(style.Pad(h, f.widths[i]), style.Bold, style.Green)
	}
	return " " + strings.Join(cells, cellSeparator) + " "
}

func (f frame) row(cells []string) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = style.Pad(cell, f.widths[i])
	}
	return " " + strings.Join(padded, cellSeparator) + " "
}

// Render writes records to w as an aligned, styled table, or EmptyMessage
// when records is empty.
func Render(w io.Writer, records []book.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, EmptyMessage)
		return
	}

	f := newFrame(records)
	rule := f.rule()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(style.Wrap(" 📚  Library Collection ", style.Bold, style.Magenta) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(f.header() + "\n")
	b.WriteString(rule + "\n")
	for _, cells := range f.cells {
		b.WriteString(f.row(cells) + "\n")
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%s  %d book(s) total%s\n", style.Dim, len(records), style.Reset)
	b.WriteString("\n")

	io.WriteString(w, b.String())
}
