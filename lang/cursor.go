package lang

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Position identifies a location in the original input.
// Line and Column are 1-based; Column counts runes, not bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// LogValue implements slog.LogValuer.
func (p Position) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("offset", p.Offset),
		slog.Int("line", p.Line),
		slog.Int("column", p.Column),
	)
}

// Cursor is an immutable view over the unconsumed portion of an input string.
//
// Advancing a Cursor returns a new Cursor; the receiver is never modified, so
// a rule that fails can hand back the Cursor it was given and the caller may
// retry another rule from the same place.
type Cursor struct {
	input  string
	offset int
}

// NewCursor returns a Cursor positioned at the start of s.
func NewCursor(s string) Cursor {
	return Cursor{input: s}
}

// Rest returns the unconsumed input.
func (c Cursor) Rest() string { return c.input[c.offset:] }

// String returns the unconsumed input.
func (c Cursor) String() string { return c.Rest() }

// EOF reports whether all input has been consumed.
func (c Cursor) EOF() bool { return c.offset >= len(c.input) }

// Offset returns the number of bytes consumed so far.
func (c Cursor) Offset() int { return c.offset }

// Advance returns a Cursor n bytes further into the input.
// n is clamped to the remaining length.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 {
		n = 0
	}

	if rem := len(c.input) - c.offset; n > rem {
		n = rem
	}

	c.offset += n

	return c
}

// Peek returns the next rune and its width in bytes, or (utf8.RuneError, 0)
// at end of input.
func (c Cursor) Peek() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}

	return utf8.DecodeRuneInString(c.input[c.offset:])
}

// Position computes the line and column of the cursor within the input.
func (c Cursor) Position() Position {
	consumed := c.input[:c.offset]
	line := strings.Count(consumed, "\n") + 1

	lineStart := strings.LastIndexByte(consumed, '\n') + 1

	return Position{
		Offset: c.offset,
		Line:   line,
		Column: utf8.RuneCountInString(consumed[lineStart:]) + 1,
	}
}
