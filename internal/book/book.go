package book

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/muurk/bookshelf/internal/style"
)

// Record is one catalog entry. The variant set is closed: only *Digital and
// *Physical implement it.
type Record interface {
	Title() string
	Author() string
	Year() int

	// Tag returns a short colored label identifying the variant.
	Tag() string
	// Detail returns the variant-specific detail, e.g. "4.5 MB".
	Detail() string
	// String returns the full one-line description.
	String() string

	sealed()
}

// base carries the fields shared by every variant.
type base struct {
	title  string
	author string
	year   int
}

func (b base) Title() string  { return b.title }
func (b base) Author() string { return b.author }
func (b base) Year() int      { return b.year }
func (base) sealed()          {}

func newBase(title, author string, year int) (base, error) {
	if strings.TrimSpace(title) == "" {
		return base{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	return base{title: title, author: author, year: year}, nil
}

// Digital is an electronic book with a file size.
type Digital struct {
	base
	sizeMB float64
}

// NewDigital creates an electronic book record.
func NewDigital(title, author string, year int, sizeMB float64) (*Digital, error) {
	b, err := newBase(title, author, year)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(sizeMB) || math.IsInf(sizeMB, 0) {
		return nil, &ValidationError{Field: "size_mb", Reason: "must be a finite number"}
	}
	if sizeMB < 0 {
		return nil, &ValidationError{Field: "size_mb", Reason: "must not be negative"}
	}
	return &Digital{base: b, sizeMB: sizeMB}, nil
}

// SizeMB returns the file size in megabytes.
func (d *Digital) SizeMB() float64 { return d.sizeMB }

func (d *Digital) Tag() string {
	return style.Wrap(" EBook ", style.Bold, style.Cyan)
}

func (d *Digital) Detail() string {
	return formatDecimal(d.sizeMB) + " MB"
}

func (d *Digital) String() string {
	return describe(d, "Size")
}

// Physical is a printed book with a page count.
type Physical struct {
	base
	pages int
}

// NewPhysical creates a printed book record.
func NewPhysical(title, author string, year int, pages int) (*Physical, error) {
	b, err := newBase(title, author, year)
	if err != nil {
		return nil, err
	}
	if pages < 0 {
		return nil, &ValidationError{Field: "pages", Reason: "must not be negative"}
	}
	return &Physical{base: b, pages: pages}, nil
}

// Pages returns the number of pages.
func (p *Physical) Pages() int { return p.pages }

func (p *Physical) Tag() string {
	return style.Wrap(" Print ", style.Bold, style.Yellow)
}

func (p *Physical) Detail() string {
	return strconv.Itoa(p.pages) + " pp"
}

func (p *Physical) String() string {
	return describe(p, "Pages")
}

func describe(r Record, detailLabel string) string {
	return fmt.Sprintf("%s  Title: %s | Author: %s | Year: %d | %s: %s",
		r.Tag(), r.Title(), r.Author(), r.Year(), detailLabel, r.Detail())
}

// formatDecimal always keeps one fractional digit for whole numbers (8 -> "8.0").
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// ValidationError reports a record field rejected at construction.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
