package cmd

import (
	"log/slog"
	"slices"
)

// Exit statuses reported through [Error.ExitCode]. Failures of the parser
// itself surface as [lang.Error] and exit with status 1.
const (
	exitFailure    = 1
	exitUsage      = 2
	exitCantCreate = 73
)

// Error is a failure of the parse, fmt, or init command that is not a parse
// error. The message names the step that failed and the wrapped error, if
// any, is its cause.
//
// Error implements [github.com/alecthomas/kong.ExitCoder], so the process
// exit status follows the kind of failure.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
	code  int
}

func newError(msg string, code int) *Error {
	return &Error{msg: msg, code: code}
}

// Error formats as "msg: cause", or msg alone without a cause.
func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}

	return e.msg + ": " + e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// Is matches the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.msg == t.msg
}

// ExitCode returns the process exit status for e.
func (e *Error) ExitCode() int { return e.code }

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)
	attrs = append(attrs, slog.String("msg", e.msg))
	attrs = append(attrs, e.attrs...)

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(attrs...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With returns a copy of e with attrs added to its log attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = append(slices.Clip(e.attrs), attrs...)

	return &c
}

// command tags e with the name of the command that failed.
func (e *Error) command(name string) *Error {
	return e.With(slog.String("command", name))
}

var (
	// ErrMissingInput is returned by parse and fmt when no expression is given
	// and standard input is a terminal.
	ErrMissingInput = newError("no expression given", exitUsage)

	// ErrFormat is returned by parse and fmt when a parsed expression cannot
	// be rendered or written to the output.
	ErrFormat = newError("write result", exitFailure)

	// ErrWriteConfig is returned by init when the configuration file cannot
	// be created. It wraps ErrFileExists if the file is already there.
	ErrWriteConfig = newError("write configuration file", exitCantCreate)
	ErrFileExists  = newError("file exists (use --force to overwrite)", exitCantCreate)

	// ErrYAMLMarshal is returned by init when the flag values cannot be
	// encoded as YAML.
	ErrYAMLMarshal = newError("encode configuration", exitFailure)
)
