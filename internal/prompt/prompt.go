// Package prompt reads validated lines of operator input in cooked mode.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter writes labels to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter. in should be the same buffered reader handed to the
// key reader so that bytes buffered by one are visible to the other.
func New(in *bufio.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Line prints label and returns the next line with surrounding space trimmed.
// A final line without a newline is returned as-is; io.EOF is returned only
// when no input remains.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Int prompts until the answer parses as a whole number.
func (p *Prompter) Int(label string) (int, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, "  Invalid input. Please enter a whole number.")
	}
}

// Float prompts until the answer parses as a number.
func (p *Prompter) Float(label string) (float64, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "  Invalid input. Please enter a number.")
	}
}
