package lang

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ardnew/lamb/log"
)

func TestCache_SameResult(t *testing.T) {
	ClearCache()

	source := `\a -> \b -> a`

	first, err := ParseString(t.Context(), source)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	second, err := ParseString(t.Context(), source)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if !Equal(first.Expr, second.Expr) || first.Rest != second.Rest {
		t.Errorf("cached result differs: %v vs %v", first.Expr, second.Expr)
	}

	if first == second {
		t.Error("cache should hand out distinct Result values")
	}

	// Mutating one copy must not affect later lookups.
	first.Expr = Integer{1}

	third, err := ParseString(t.Context(), source)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if !Equal(third.Expr, second.Expr) {
		t.Errorf("cache entry was modified through a returned result: %v", third.Expr)
	}
}

func TestCache_Errors(t *testing.T) {
	ClearCache()

	for range 2 {
		if _, err := ParseString(t.Context(), "256"); err == nil {
			t.Fatal("expected cached parse of 256 to fail")
		}
	}
}

func TestCache_OptionsBypass(t *testing.T) {
	ClearCache()

	// A limited depth must not reuse the default-options entry.
	if _, err := ParseString(t.Context(), `\a -> \b -> a`); err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if _, err := ParseString(t.Context(), `\a -> \b -> a`, WithMaxDepth(1)); err == nil {
		t.Error("depth limit ignored after cached parse")
	}
}

func TestClearCache(t *testing.T) {
	ClearCache()

	if _, err := ParseString(t.Context(), "x"); err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	count := 0

	globalCache.Range(func(_, _ any) bool {
		count++

		return true
	})

	if count != 1 {
		t.Errorf("cache entries = %d, want 1", count)
	}

	ClearCache()

	globalCache.Range(func(_, _ any) bool {
		t.Error("cache not empty after ClearCache")

		return false
	})
}

func TestHashOptions(t *testing.T) {
	a := hashOptions(optionsKey{maxDepth: 10})
	b := hashOptions(optionsKey{maxDepth: 10})
	c := hashOptions(optionsKey{maxDepth: 10, strict: true})

	if a != b {
		t.Error("equal options hashed differently")
	}

	if a == c {
		t.Error("distinct options hashed equally")
	}
}

func TestCache_Limit(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	saved := cacheLimit
	cacheLimit = 3

	t.Cleanup(func() { cacheLimit = saved })

	for i := range 10 {
		if _, err := ParseString(t.Context(), fmt.Sprint(i)); err != nil {
			t.Fatalf("ParseString(%d) failed: %v", i, err)
		}
	}

	count := 0

	globalCache.Range(func(_, _ any) bool {
		count++

		return true
	})

	if count != 3 || cacheEntries.Load() != 3 {
		t.Errorf("cache entries = %d (counter %d), want 3", count, cacheEntries.Load())
	}

	// Sources parsed after the limit are still parsed correctly.
	res, err := ParseString(t.Context(), "9")
	if err != nil || !Equal(res.Expr, Integer{9}) {
		t.Errorf("ParseString(9) = %v, %v", res, err)
	}
}

func TestCache_TracesEveryCaller(t *testing.T) {
	ClearCache()

	source := `\a -> a`

	if _, err := ParseString(t.Context(), source); err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	for _, tt := range []struct {
		source string
		want   string
	}{
		{source, "parse complete"},
		{"256", "parse failed"},
		{"256", "parse failed"},
	} {
		var buf bytes.Buffer

		logger := log.Make(&buf,
			log.WithLevel(log.LevelTrace),
			log.WithFormat(log.FormatJSON),
			log.WithPretty(false),
		)

		_, _ = ParseString(t.Context(), tt.source, WithLogger(logger))

		if out := buf.String(); !strings.Contains(out, tt.want) {
			t.Errorf("ParseString(%q) log missing %q:\n%s", tt.source, tt.want, out)
		}
	}
}
