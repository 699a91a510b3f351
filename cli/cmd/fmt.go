package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/lamb/lang"
)

// Fmt parses an expression and writes it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as native lambda syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	AST    AST    `cmd:""                    help:"Format as Go syntax tree."`
}

// Native formats input as native lambda syntax.
type Native struct {
	Input `embed:""`
}

// Run executes the native command.
func (f *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	res, err := f.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "native"))
	}

	if err := res.Format(ctx, outputFrom(ctx)); err != nil {
		return ErrFormat.command("fmt").Wrap(err).With(slog.String("format", "native"))
	}

	return nil
}

// JSON formats input as JSON.
type JSON struct {
	Input `embed:""`

	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)" short:"i"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	res, err := j.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "json"))
	}

	if err := res.FormatJSON(ctx, outputFrom(ctx), j.Indent); err != nil {
		return ErrFormat.command("fmt").Wrap(err).With(slog.String("format", "json"))
	}

	return nil
}

// YAML formats input as YAML.
type YAML struct {
	Input `embed:""`

	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" short:"i"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	res, err := y.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "yaml"))
	}

	if err := res.FormatYAML(ctx, outputFrom(ctx), y.Indent); err != nil {
		return ErrFormat.command("fmt").Wrap(err).With(slog.String("format", "yaml"))
	}

	return nil
}

// AST formats input as the Go representation of the syntax tree.
type AST struct {
	Input `embed:""`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	res, err := a.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "ast"))
	}

	if err := res.Print(ctx, outputFrom(ctx)); err != nil {
		return ErrFormat.command("fmt").Wrap(err).With(slog.String("format", "ast"))
	}

	return nil
}
