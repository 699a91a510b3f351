package lang

import (
	"bytes"
	"context"
	"encoding/gob"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/zeebo/xxh3"
)

// globalCache stores parse outcomes keyed by a hash of (source, options).
var globalCache sync.Map

// cacheLimit bounds the number of sources held by globalCache. Once reached,
// new sources are parsed without being stored until [ClearCache] is called.
var cacheLimit int64 = 4096

// cacheEntries counts the entries stored in globalCache.
var cacheEntries atomic.Int64

// state records the outcome of parsing one source.
type state struct {
	once   sync.Once
	source string
	result *Result
	err    error
}

// hashOptions encodes options using gob and hashes with xxh3.
// Returns a hash that uniquely identifies the options configuration.
func hashOptions(opts optionsKey) uint64 {
	var buf bytes.Buffer

	enc := gob.NewEncoder(&buf)

	// Encode relevant options fields
	_ = enc.Encode(opts.maxDepth)
	_ = enc.Encode(opts.strict)

	return xxh3.Hash(buf.Bytes())
}

// parseStringCached parses a string with caching.
func parseStringCached(
	ctx context.Context,
	source string,
	cfg parseConfig,
) (*Result, error) {
	sourceHash := xxh3.HashString(source)
	optsHash := hashOptions(cfg.opts)
	sourceKey := strconv.FormatUint(sourceHash^optsHash, 36)

	value, cacheHit := globalCache.Load(sourceKey)
	if !cacheHit {
		if cacheEntries.Load() >= cacheLimit {
			cfg.logger.TraceContext(ctx, "cache full",
				slog.Int64("limit", cacheLimit),
			)

			return parse(source, cfg)
		}

		value, cacheHit = globalCache.LoadOrStore(sourceKey, &state{source: source})
		if !cacheHit {
			cacheEntries.Add(1)
		}
	}

	cached, ok := value.(*state)
	if !ok || cached.source != source {
		// Hash collision or foreign entry: parse without caching.
		return parse(source, cfg)
	}

	cfg.logger.TraceContext(ctx, "cache lookup",
		slog.String("source_hash", strconv.FormatUint(sourceHash, 16)),
		slog.String("opts_hash", strconv.FormatUint(optsHash, 16)),
		slog.Bool("cache_hit", cacheHit),
	)

	cached.once.Do(func() {
		cached.result, cached.err = parse(source, cfg)
	})

	if cached.err != nil {
		return nil, cached.err
	}

	// Hand out a copy so callers cannot disturb the cached value.
	result := *cached.result

	return &result, nil
}

// ClearCache removes all cached parse results.
//
// The cache keeps every distinct source parsed with default options, up to
// a fixed number of entries, for the life of the process. Long-running
// callers that parse many different sources should clear it periodically
// to release them.
func ClearCache() {
	globalCache.Clear()
	cacheEntries.Store(0)
}
