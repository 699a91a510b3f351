package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/lamb/lang"
)

// Input is embedded by every command that parses an expression.
//
// The expression is taken from the positional arguments when given, then from
// the --source files, and finally from standard input.
type Input struct {
	Expr []string `arg:"" help:"Expression to parse; multiple words are joined with a space." name:"expr" optional:""`
}

// source returns the text to parse and a name describing where it came from.
func (in *Input) source(ctx context.Context) (string, string, error) {
	if len(in.Expr) > 0 {
		return strings.Join(in.Expr, " "), "args", nil
	}

	if sf := sourceFilesFrom(ctx); sf != nil && !sf.IsZero() {
		data, err := io.ReadAll(sf)
		if err != nil {
			return "", "", lang.ErrReadInput.Wrap(err).
				With(slog.String("source", "files"))
		}

		return string(data), "files", nil
	}

	stdin := stdinFrom(ctx)
	if isTerminal(stdin) {
		return "", "", ErrMissingInput.
			With(slog.String("hint", "pass an expression, --source, or pipe one on stdin"))
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", lang.ErrReadInput.Wrap(err).
			With(slog.String("source", "stdin"))
	}

	return string(data), "stdin", nil
}

// parse reads the input and parses it with the options stored in ctx.
func (in *Input) parse(ctx context.Context) (*lang.Result, error) {
	src, from, err := in.source(ctx)
	if err != nil {
		return nil, err
	}

	res, err := lang.ParseString(ctx, src, parseOptionsFrom(ctx)...)
	if err != nil {
		return nil, lang.WrapError(err).With(slog.String("input", from))
	}

	return res, nil
}

// isTerminal reports whether r is an interactive character device, in which
// case reading it would wait for the user instead of a pipe.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()

	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
