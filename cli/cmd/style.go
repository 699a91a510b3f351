package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles decorates command output. Colors are dropped when the writer is not
// a color terminal.
type styles struct {
	ok, fail, hint lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		ok:   r.NewStyle().Foreground(lipgloss.Color("2")),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		hint: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// lines renders each line of s with style, keeping the line breaks.
func lines(style lipgloss.Style, s string) string {
	parts := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, p := range parts {
		parts[i] = style.Render(p)
	}

	return strings.Join(parts, "\n") + "\n"
}
