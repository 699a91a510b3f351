package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handlers. Styles come from a
// renderer bound to the handler's writer, so colors are dropped when the
// writer is not a color terminal.
type palette struct {
	key, str, num, yes, no, dur, tim, null lipgloss.Style

	trace, debug, info, warn, fail lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		yes:   fg("2"),
		no:    fg("1"),
		dur:   fg("5"),
		tim:   fg("4"),
		null:  fg("8"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3"),
		fail:  fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.fail
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyCommon holds the state shared by both pretty handlers.
type prettyCommon struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  palette
	groups []string
	attrs  []slog.Attr // preformatted with qualified keys
}

func newPrettyCommon(w io.Writer, opts *slog.HandlerOptions) prettyCommon {
	return prettyCommon{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: newPalette(w),
	}
}

func (h prettyCommon) enabled(level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

// qualify prefixes key with the open groups.
func (h prettyCommon) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}

	return strings.Join(h.groups, ".") + "." + key
}

func (h prettyCommon) withAttrs(attrs []slog.Attr) prettyCommon {
	next := h
	next.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(next.attrs, h.attrs)

	for _, a := range attrs {
		a = h.replace(a)
		if a.Key == "" {
			continue
		}

		next.attrs = append(next.attrs, slog.Attr{Key: h.qualify(a.Key), Value: a.Value})
	}

	return next
}

func (h prettyCommon) withGroup(name string) prettyCommon {
	if name == "" {
		return h
	}

	next := h
	next.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return next
}

// replace resolves the attribute value and applies the configured
// ReplaceAttr function.
func (h prettyCommon) replace(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(h.groups, a)
		a.Value = a.Value.Resolve()
	}

	return a
}

// header returns the built-in attributes of r: time, level, source, and
// message, after ReplaceAttr.
func (h prettyCommon) header(r slog.Record) []slog.Attr {
	var head []slog.Attr

	builtin := func(a slog.Attr) {
		if h.opts.ReplaceAttr != nil {
			a = h.opts.ReplaceAttr(nil, a)
		}

		if a.Key != "" {
			head = append(head, a)
		}
	}

	if !r.Time.IsZero() {
		builtin(slog.Time(slog.TimeKey, r.Time))
	}

	builtin(slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			builtin(slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	builtin(slog.String(slog.MessageKey, r.Message))

	return head
}

func (h prettyCommon) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// scalar renders a non-group value with the palette.
func (h prettyCommon) scalar(v slog.Value) string {
	s := h.style

	switch v.Kind() {
	case slog.KindString:
		return s.str.Render(v.String())

	case slog.KindInt64:
		return s.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return s.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return s.yes.Render("true")
		}

		return s.no.Render("false")

	case slog.KindDuration:
		return s.dur.Render(v.Duration().String())

	case slog.KindTime:
		return s.tim.Render(v.Time().Format(time.RFC3339))

	case slog.KindAny:
		switch a := v.Any().(type) {
		case nil:
			return s.null.Render("null")
		case slog.Level:
			return s.level(a).Render(strings.ToUpper(Level(a).String()))
		case error:
			return s.no.Render(a.Error())
		}

		return s.str.Render(v.String())

	default:
		return s.str.Render(v.String())
	}
}

// prettyTextHandler implements a colorized text handler for log messages.
// Group values are flattened into dotted keys.
type prettyTextHandler struct {
	prettyCommon
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{newPrettyCommon(w, opts)}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for _, a := range h.header(r) {
		h.writeAttr(buf, "", a, r.Level)
	}

	for _, a := range h.attrs {
		h.writeAttr(buf, "", a, r.Level)
	}

	r.Attrs(func(a slog.Attr) bool {
		a = h.replace(a)
		if a.Key != "" {
			h.writeAttr(buf, h.qualify(""), a, r.Level)
		}

		return true
	})

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

func (h *prettyTextHandler) writeAttr(
	buf *bytes.Buffer,
	prefix string,
	a slog.Attr,
	level slog.Level,
) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, prefix, ga, level)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.style.key.Render(prefix + a.Key))
	buf.WriteByte('=')

	// The level arrives as a string after ReplaceAttr; keep its color.
	if a.Key == slog.LevelKey && prefix == "" && a.Value.Kind() == slog.KindString {
		buf.WriteString(h.style.level(level).Render(a.Value.String()))

		return
	}

	buf.WriteString(h.scalar(a.Value))
}

// prettyJSONHandler implements a pretty-printed JSON handler for log messages.
// Keys and strings are written without quotes for readability; the output is
// meant for terminals, not for machine consumption.
type prettyJSONHandler struct {
	prettyCommon
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{newPrettyCommon(w, opts)}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString("{")

	first := true

	for _, a := range h.header(r) {
		h.writeJSONAttr(buf, a, 1, &first, r.Level)
	}

	for _, a := range h.attrs {
		h.writeJSONAttr(buf, a, 1, &first, r.Level)
	}

	r.Attrs(func(a slog.Attr) bool {
		a = h.replace(a)
		if a.Key != "" {
			a.Key = h.qualify(a.Key)
			h.writeJSONAttr(buf, a, 1, &first, r.Level)
		}

		return true
	})

	buf.WriteString("\n}")

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}

func (h *prettyJSONHandler) writeJSONAttr(
	buf *bytes.Buffer,
	a slog.Attr,
	depth int,
	first *bool,
	level slog.Level,
) {
	a.Value = a.Value.Resolve()

	if !*first {
		buf.WriteByte(',')
	}

	*first = false

	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("  ", depth))
	buf.WriteString(h.style.key.Render(a.Key))
	buf.WriteString(": ")

	switch {
	case a.Value.Kind() == slog.KindGroup:
		buf.WriteString("{")

		inner := true
		for _, ga := range a.Value.Group() {
			h.writeJSONAttr(buf, ga, depth+1, &inner, level)
		}

		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat("  ", depth))
		buf.WriteString("}")

	case a.Key == slog.LevelKey && depth == 1 && a.Value.Kind() == slog.KindString:
		buf.WriteString(h.style.level(level).Render(a.Value.String()))

	default:
		buf.WriteString(h.scalar(a.Value))
	}
}
