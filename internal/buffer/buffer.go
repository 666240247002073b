package buffer

import (
	"strings"

	"github.com/riverfjs/threadsplit-go/internal/util"
)

// TextBuffer accumulates text parts and tracks their display length under a
// single CJK-width policy.
type TextBuffer struct {
	parts         []string
	length        int
	countCJKAsTwo bool
}

// New creates a new TextBuffer measuring with the given policy.
func New(countCJKAsTwo bool) *TextBuffer {
	return &TextBuffer{
		parts:         make([]string, 0, 4),
		countCJKAsTwo: countCJKAsTwo,
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.length += util.DisplayLength(text, tb.countCJKAsTwo)
}

// WriteRepeat appends s count times.
func (tb *TextBuffer) WriteRepeat(s string, count int) {
	if count <= 0 {
		return
	}
	tb.Write(strings.Repeat(s, count))
}

// Length returns the display length of everything written so far.
func (tb *TextBuffer) Length() int {
	return tb.length
}

// ByteOffset returns the current byte offset (total string length).
func (tb *TextBuffer) ByteOffset() int {
	total := 0
	for _, p := range tb.parts {
		total += len(p)
	}
	return total
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(tb.ByteOffset())
	for _, p := range tb.parts {
		sb.WriteString(p)
	}
	return sb.String()
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.length = 0
}
