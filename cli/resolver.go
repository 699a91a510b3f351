package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/lamb/log"
)

// resolve returns a [kong.ConfigurationLoader] for YAML configuration files
// such as the one written by the init command.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx, "config"), "/path/to/config.yaml")
//
// If the document has a top-level mapping named section, only that mapping
// is used; otherwise the whole document is. Nested mappings are flattened by
// joining keys with "-", so both of the following set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Keys may use underscores in place of hyphens. A malformed file is logged
// and treated as empty, and command-line flags override file values.
func resolve(ctx context.Context, section string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WarnContext(ctx, "ignoring malformed configuration",
					slog.String("section", section),
					slog.Any("error", err),
				)
			}

			return config{}, nil
		}

		if sub, ok := doc[section].(map[string]any); ok {
			doc = sub
		}

		conf := make(config)
		conf.flatten("", doc)

		log.TraceContext(ctx, "loaded configuration",
			slog.Int("keys", len(conf)),
		)

		return conf, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed; unknown keys are ignored.
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Keys are stored in hyphenated form by flatten.
	if value, ok := r[normalizeKey(flag.Name)]; ok {
		return value, nil
	}

	// Not found - return nil to let kong use defaults
	return nil, nil
}

// flatten copies m into r, joining nested keys to prefix with "-".
func (r config) flatten(prefix string, m map[string]any) {
	for key, val := range m {
		key = normalizeKey(key)
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := val.(map[string]any); ok {
			r.flatten(key, sub)

			continue
		}

		r[key] = scalar(val)
	}
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(key), "_", "-")
}

// scalar converts a decoded YAML value into a form kong can map onto a flag.
// Kong parses numbers from strings, so numbers are formatted.
func scalar(val any) any {
	switch v := val.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = scalar(item)
		}

		return items
	default:
		return v
	}
}
