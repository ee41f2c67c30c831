package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/muurk/bookshelf/internal/book"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("position out of range")

// RangeError reports a position outside [0, Size).
type RangeError struct {
	Position int
	Size     int
}

// Error implements the error interface
func (e *RangeError) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d)", e.Position, e.Size)
}

// Unwrap returns ErrOutOfRange for errors.Is checks
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Catalog is an ordered in-memory collection of records. Insertion order is
// both display order and indexing order.
type Catalog struct {
	records []book.Record
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Add appends a record.
func (c *Catalog) Add(r book.Record) {
	c.records = append(c.records, r)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// List returns a copy of all records; changing it does not affect the catalog.
func (c *Catalog) List() []book.Record {
	return slices.Clone(c.records)
}

// DeleteAt removes and returns the record at pos. Later records shift down
// by one. An invalid position leaves the catalog unchanged.
func (c *Catalog) DeleteAt(pos int) (book.Record, error) {
	if pos < 0 || pos >= len(c.records) {
		return nil, &RangeError{Position: pos, Size: len(c.records)}
	}
	removed := c.records[pos]
	c.records = slices.Delete(c.records, pos, pos+1)
	return removed, nil
}

// SearchByTitle returns records whose title contains query, ignoring case,
// in catalog order. An empty query matches every record.
func (c *Catalog) SearchByTitle(query string) []book.Record {
	q := strings.ToLower(query)
	var matches []book.Record
	for _, r := range c.records {
		if strings.Contains(strings.ToLower(r.Title()), q) {
			matches = append(matches, r)
		}
	}
	return matches
}
