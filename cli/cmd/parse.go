package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/kr/pretty"

	"github.com/ardnew/lamb/lang"
	"github.com/ardnew/lamb/log"
)

// Parse parses an expression and prints the resulting syntax tree along with
// any input left unconsumed.
type Parse struct {
	Input `embed:""`

	Quiet bool `help:"Do not echo the command line before the result." short:"q"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	w := outputFrom(ctx)
	style := newStyles(w)

	if ktx := kongContextFrom(ctx); ktx != nil && !p.Quiet {
		argv := append([]string{ktx.Model.Name}, ktx.Args...)
		fmt.Fprintln(w, style.hint.Render(pretty.Sprint(argv)))
	}

	res, err := p.parse(ctx)
	if err != nil {
		fmt.Fprintln(w, style.fail.Render("Error: "+err.Error()))

		return lang.WrapError(err).With(slog.String("command", "parse"))
	}

	var buf bytes.Buffer
	if err := res.Print(ctx, &buf); err != nil {
		return ErrFormat.command("parse").Wrap(err)
	}

	if _, err := fmt.Fprint(w, lines(style.ok, buf.String())); err != nil {
		return ErrFormat.command("parse").Wrap(err)
	}

	log.DebugContext(ctx, "parsed expression",
		slog.String("expr", fmt.Sprint(res.Expr)),
		slog.Int("remaining", len(res.Remaining())),
	)

	return nil
}
