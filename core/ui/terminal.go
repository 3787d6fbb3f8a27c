// Package ui - Terminal output helpers
// Colors are applied only when writing to a terminal.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Colors for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Red   = "\033[31m"
	Green = "\033[32m"
	Cyan  = "\033[36m"
)

// Writer is the UI output destination. It keeps the first write error.
type Writer struct {
	out     io.Writer
	noColor bool
	err     error
}

// NewWriter creates a UI writer; color is enabled only for terminals
func NewWriter(out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: !IsTerminal(out),
	}
}

// IsTerminal reports whether out is a character device
func IsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a formatted line
func (w *Writer) Println(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format+"\n", args...)
}

// Strong renders text in bold
func (w *Writer) Strong(text string) string {
	return w.color(Bold, text)
}

// Heading renders a section title
func (w *Writer) Heading(text string) string {
	return w.color(Bold+Cyan, text)
}

// OK renders a passing mark
func (w *Writer) OK(text string) string {
	return w.color(Green, text)
}

// Fail renders a failing mark
func (w *Writer) Fail(text string) string {
	return w.color(Red, text)
}

// Err returns the first write error
func (w *Writer) Err() error {
	return w.err
}
