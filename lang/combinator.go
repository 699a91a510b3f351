package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// Parser is a rule: it consumes a prefix of the input at a Cursor and
// produces a value of type T together with the Cursor following that prefix.
//
// A Parser that fails must return the Cursor it was given, unchanged, so that
// the caller can try another rule at the same position.
type Parser[T any] func(Cursor) (T, Cursor, error)

// Parse runs p on s.
func (p Parser[T]) Parse(s string) (T, Cursor, error) {
	return p(NewCursor(s))
}

// skipSpace returns c advanced past any leading whitespace.
func skipSpace(c Cursor) Cursor {
	for !c.EOF() {
		r, size := c.Peek()
		if !unicode.IsSpace(r) {
			break
		}

		c = c.Advance(size)
	}

	return c
}

// WS returns a Parser that discards leading whitespace and then runs p.
// Trailing whitespace is left for whichever rule runs next.
func WS[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		v, rest, err := p(skipSpace(c))
		if err != nil {
			var zero T

			return zero, c, err
		}

		return v, rest, nil
	}
}

// Alt tries each parser in order at the same Cursor and returns the first
// success. If all fail, the error is [ErrExhausted] wrapping every failure.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		errs := make([]error, 0, len(ps))

		for _, p := range ps {
			v, rest, err := p(c)
			if err == nil {
				return v, rest, nil
			}

			errs = append(errs, err)
		}

		var zero T

		return zero, c, ErrExhausted.
			WithPosition(c.Position()).
			Wrap(failures(errs))
	}
}

// failures joins the errors of every alternative tried. Unlike errors.Join,
// the message stays on one line.
type failures []error

func (f failures) Error() string {
	msgs := make([]string, len(f))
	for i, err := range f {
		msgs[i] = err.Error()
	}

	return strings.Join(msgs, "; ")
}

func (f failures) Unwrap() []error { return f }

// Char returns a Parser matching the single rune r.
func Char(r rune) Parser[rune] {
	return func(c Cursor) (rune, Cursor, error) {
		got, size := c.Peek()
		if size == 0 || got != r {
			return 0, c, noMatch(c, strconv.QuoteRune(r))
		}

		return r, c.Advance(size), nil
	}
}

// Tag returns a Parser matching the literal string s.
func Tag(s string) Parser[string] {
	return func(c Cursor) (string, Cursor, error) {
		if !strings.HasPrefix(c.Rest(), s) {
			return "", c, noMatch(c, strconv.Quote(s))
		}

		return s, c.Advance(len(s)), nil
	}
}

// TakeWhileMN returns a Parser that consumes the longest run of at most n
// runes satisfying pred. It fails if fewer than m runes match.
// A negative n means no upper bound.
func TakeWhileMN(m, n int, pred func(rune) bool, name string) Parser[string] {
	return func(c Cursor) (string, Cursor, error) {
		end := c
		count := 0

		for n < 0 || count < n {
			r, size := end.Peek()
			if size == 0 || !pred(r) {
				break
			}

			end = end.Advance(size)
			count++
		}

		if count < m {
			return "", c, noMatch(c, name)
		}

		return c.Rest()[:end.Offset()-c.Offset()], end, nil
	}
}

// Alpha1 matches one or more ASCII letters.
var Alpha1 = TakeWhileMN(1, -1, isAlpha, "letter")

// Map returns a Parser that transforms the value produced by p with f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) (U, Cursor, error) {
		v, rest, err := p(c)
		if err != nil {
			var zero U

			return zero, c, err
		}

		return f(v), rest, nil
	}
}

// MapErr is like [Map], but f may reject the value. A rejected value fails
// the Parser without consuming input.
func MapErr[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(c Cursor) (U, Cursor, error) {
		var zero U

		v, rest, err := p(c)
		if err != nil {
			return zero, c, err
		}

		u, err := f(v)
		if err != nil {
			return zero, c, WrapError(err).WithPosition(skipSpace(c).Position())
		}

		return u, rest, nil
	}
}

// Preceded runs first and then second, keeping only the value of second.
func Preceded[T, U any](first Parser[T], second Parser[U]) Parser[U] {
	return func(c Cursor) (U, Cursor, error) {
		var zero U

		_, rest, err := first(c)
		if err != nil {
			return zero, c, err
		}

		v, rest, err := second(rest)
		if err != nil {
			return zero, c, err
		}

		return v, rest, nil
	}
}

// Terminated runs first and then second, keeping only the value of first.
func Terminated[T, U any](first Parser[T], second Parser[U]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T

		v, rest, err := first(c)
		if err != nil {
			return zero, c, err
		}

		_, rest, err = second(rest)
		if err != nil {
			return zero, c, err
		}

		return v, rest, nil
	}
}

func noMatch(c Cursor, expected string) *Error {
	return ErrNoMatch.
		WithPosition(c.Position()).
		With(slog.String("expected", expected)).
		Wrap(errors.New("expected " + expected))
}

// Character classification

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
