package config

import (
	"fmt"
	"strings"

	"github.com/muurk/bookshelf/internal/book"
)

// Config represents the entire user configuration file.
type Config struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
	Books       []SeedBook   `yaml:"books,omitempty"` // Loaded into the catalog at startup
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	SeedSamples bool   `yaml:"seed_samples"`        // Preload the built-in sample books
	LogLevel    string `yaml:"log_level,omitempty"` // Overridden by --log-level and BOOKSHELF_LOG_LEVEL
}

// SeedBook describes one record to preload. Type selects the variant.
type SeedBook struct {
	Type   string  `yaml:"type"` // "ebook" or "print"
	Title  string  `yaml:"title"`
	Author string  `yaml:"author"`
	Year   int     `yaml:"year"`
	SizeMB float64 `yaml:"size_mb,omitempty"` // ebook only
	Pages  int     `yaml:"pages,omitempty"`   // print only
}

// Seed book types
const (
	TypeEBook = "ebook"
	TypePrint = "print"
)

// SampleBooks are preloaded when Preferences.SeedSamples is set so the
// catalog is not empty on first run.
var SampleBooks = []SeedBook{
	{Type: TypeEBook, Title: "Clean Code", Author: "Robert C. Martin", Year: 2008, SizeMB: 4.5},
	{Type: TypePrint, Title: "The Pragmatic Programmer", Author: "Andy Hunt", Year: 1999, Pages: 352},
	{Type: TypeEBook, Title: "Python Crash Course", Author: "Eric Matthes", Year: 2015, SizeMB: 8.2},
	{Type: TypePrint, Title: "Design Patterns", Author: "Gang of Four", Year: 1994, Pages: 395},
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version: 1,
		Preferences: &Preferences{
			SeedSamples: true,
		},
	}
}

// Record builds the catalog record described by s.
func (s SeedBook) Record() (book.Record, error) {
	switch strings.ToLower(s.Type) {
	case TypeEBook:
		d, err := book.NewDigital(s.Title, s.Author, s.Year, s.SizeMB)
		if err != nil {
			return nil, err
		}
		return d, nil
	case TypePrint:
		p, err := book.NewPhysical(s.Title, s.Author, s.Year, s.Pages)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown book type %q (want %q or %q)", s.Type, TypeEBook, TypePrint)
	}
}

// SeedRecords returns the sample books (if enabled) followed by the books
// listed in the file, in order.
func (c *Config) SeedRecords() ([]book.Record, error) {
	var seeds []SeedBook
	if c.Preferences != nil && c.Preferences.SeedSamples {
		seeds = append(seeds, SampleBooks...)
	}
	seeds = append(seeds, c.Books...)

	records := make([]book.Record, 0, len(seeds))
	for i, s := range seeds {
		r, err := s.Record()
		if err != nil {
			return nil, fmt.Errorf("seed book %d (%q): %w", i+1, s.Title, err)
		}
		records = append(records, r)
	}
	return records, nil
}
