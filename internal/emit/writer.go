// Package emit provides the append-only text sink shader generators write
// into.
//
// A Writer is bounded: once an append would exceed its capacity the writer
// records ErrBufferOverflow, drops that and every later append, and refuses
// to hand out the text. Generators therefore never return a truncated shader.
package emit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBufferOverflow is reported when generated text exceeds the writer
// capacity.
var ErrBufferOverflow = errors.New("shader source buffer too small")

const indentUnit = "    "

// Writer accumulates shader source text up to a fixed capacity.
type Writer struct {
	sb       strings.Builder
	capacity int
	depth    int
	err      error
}

// NewWriter creates a writer holding at most capacity bytes.
// A capacity <= 0 disables the limit.
func NewWriter(capacity int) *Writer {
	return &Writer{capacity: capacity}
}

// Capacity returns the byte limit, or 0 when unlimited.
func (w *Writer) Capacity() int {
	if w.capacity < 0 {
		return 0
	}
	return w.capacity
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.sb.Len()
}

// Err returns the sticky overflow error, if any.
func (w *Writer) Err() error {
	return w.err
}

// Indent increases the indentation of subsequent lines by one level.
func (w *Writer) Indent() {
	w.depth++
}

// Dedent decreases the indentation of subsequent lines by one level.
func (w *Writer) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

// Write appends s verbatim.
func (w *Writer) Write(s string) {
	if w.err != nil {
		return
	}
	if w.capacity > 0 && w.sb.Len()+len(s) > w.capacity {
		w.err = fmt.Errorf("%w: need %d bytes, capacity %d",
			ErrBufferOverflow, w.sb.Len()+len(s), w.capacity)
		return
	}
	w.sb.WriteString(s)
}

// Line appends one indented line. Arguments are formatted with fmt; float
// literals must be passed through Float so they render without locale or
// precision surprises.
func (w *Writer) Line(format string, args ...any) {
	if w.err != nil {
		return
	}
	line := format
	if len(args) > 0 {
		line = fmt.Sprintf(format, args...)
	}
	w.Write(strings.Repeat(indentUnit, w.depth) + line + "\n")
}

// Blank appends an empty line.
func (w *Writer) Blank() {
	w.Write("\n")
}

// String returns the accumulated text, or the overflow error.
func (w *Writer) String() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	return w.sb.String(), nil
}

// Reset discards all text and clears the overflow state.
func (w *Writer) Reset() {
	w.sb.Reset()
	w.depth = 0
	w.err = nil
}
