package lang

import "testing"

func TestCursor_AdvanceIsImmutable(t *testing.T) {
	c := NewCursor("hello")
	d := c.Advance(2)

	if c.Rest() != "hello" || c.Offset() != 0 {
		t.Errorf("original cursor changed: %q at %d", c.Rest(), c.Offset())
	}

	if d.Rest() != "llo" || d.Offset() != 2 {
		t.Errorf("advanced cursor = %q at %d, want %q at 2", d.Rest(), d.Offset(), "llo")
	}
}

func TestCursor_AdvanceClamps(t *testing.T) {
	c := NewCursor("ab")

	if got := c.Advance(10); !got.EOF() || got.Offset() != 2 {
		t.Errorf("Advance(10) = offset %d, want 2 at EOF", got.Offset())
	}

	if got := c.Advance(-1); got != c {
		t.Errorf("Advance(-1) moved the cursor to %d", got.Offset())
	}
}

func TestCursor_Peek(t *testing.T) {
	r, size := NewCursor("λx").Peek()
	if r != 'λ' || size != 2 {
		t.Errorf("Peek = (%q, %d), want ('λ', 2)", r, size)
	}

	if _, size := NewCursor("").Peek(); size != 0 {
		t.Errorf("Peek at EOF returned size %d", size)
	}
}

func TestCursor_Position(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		advance int
		want    Position
	}{
		{name: "start", input: "abc", advance: 0, want: Position{0, 1, 1}},
		{name: "same line", input: "abc", advance: 2, want: Position{2, 1, 3}},
		{name: "after newline", input: "ab\ncd", advance: 4, want: Position{4, 2, 2}},
		{name: "at newline", input: "ab\ncd", advance: 3, want: Position{3, 2, 1}},
		{name: "multibyte", input: "λλx", advance: 4, want: Position{4, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCursor(tt.input).Advance(tt.advance).Position()
			if got != tt.want {
				t.Errorf("Position() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
