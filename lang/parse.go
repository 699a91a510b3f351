package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"

	"github.com/ardnew/lamb/log"
)

// Result is a successful parse: the expression and the unconsumed input.
type Result struct {
	Expr Expr
	Rest Cursor
}

// Remaining returns the input left over after the expression.
func (r *Result) Remaining() string { return r.Rest.Rest() }

// optionsKey holds the options that affect parse results.
// This type is gob-encodable for cache key hashing.
type optionsKey struct {
	maxDepth int
	strict   bool
}

// parseConfig is the effective configuration of a single parse.
type parseConfig struct {
	opts   optionsKey
	logger log.Logger // outside optionsKey, doesn't affect cache
}

// Option configures parsing behavior.
type Option func(*parseConfig)

// WithMaxDepth sets the maximum nesting depth of function bodies.
// A depth of zero or less disables the limit.
func WithMaxDepth(depth int) Option {
	return func(cfg *parseConfig) {
		cfg.opts.maxDepth = depth
	}
}

// WithStrict requires that nothing but whitespace follows the expression.
// Any other leftover input fails the parse with [ErrTrailingInput].
func WithStrict(strict bool) Option {
	return func(cfg *parseConfig) {
		cfg.opts.strict = strict
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(cfg *parseConfig) {
		cfg.logger = logger
	}
}

func defaultOptions() optionsKey {
	return optionsKey{maxDepth: DefaultMaxDepth}
}

func makeConfig(opts ...Option) parseConfig {
	cfg := parseConfig{opts: defaultOptions()}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ParseString parses an expression from the start of s.
//
// On success the returned Result holds the expression and whatever input
// follows it. Parses made with default options are cached, so parsing the
// same source twice returns equal results without re-running the grammar.
// Cached sources stay in memory until [ClearCache] is called; once the cache
// holds its maximum number of entries, new sources are parsed uncached.
func ParseString(ctx context.Context, s string, opts ...Option) (*Result, error) {
	cfg := makeConfig(opts...)

	cfg.logger.TraceContext(ctx, "parse start",
		slog.Int("source_length", len(s)),
		slog.Int("max_depth", cfg.opts.maxDepth),
		slog.Bool("strict", cfg.opts.strict),
	)

	var (
		res *Result
		err error
	)

	if cfg.opts == defaultOptions() {
		res, err = parseStringCached(ctx, s, cfg)
	} else {
		res, err = parse(s, cfg)
	}

	if err != nil {
		cfg.logger.TraceContext(ctx, "parse failed", slog.Any("error", err))

		return nil, err
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.String("kind", res.Expr.Kind().String()),
		slog.Int("consumed", res.Rest.Offset()),
		slog.Int("remaining", len(res.Remaining())),
	)

	return res, nil
}

// ParseReader reads all of r and parses an expression from it.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Result, error) {
	// Wrap reader with async read-ahead so I/O overlaps with buffering.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return ParseString(ctx, string(data), opts...)
}

// parse runs the top-level expression rule without consulting the cache.
func parse(s string, cfg parseConfig) (*Result, error) {
	g := grammar{maxDepth: cfg.opts.maxDepth}

	expr, rest, err := g.expression(0)(NewCursor(s))
	if err != nil {
		return nil, err
	}

	if cfg.opts.strict {
		if tail := skipSpace(rest); !tail.EOF() {
			return nil, ErrTrailingInput.
				WithPosition(tail.Position()).
				With(slog.String("rest", tail.Rest()))
		}
	}

	return &Result{Expr: expr, Rest: rest}, nil
}
