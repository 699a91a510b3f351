package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

type ruleTest struct {
	name  string
	input string
	want  Expr
	rest  string
}

func runRuleTests(t *testing.T, rule Parser[Expr], tests []ruleTest) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := rule.Parse(tt.input)
			if err != nil {
				t.Fatalf("parse(%q): unexpected error: %v", tt.input, err)
			}

			if !Equal(got, tt.want) {
				t.Errorf("parse(%q) expr mismatch:\n%s",
					tt.input, strings.Join(pretty.Diff(tt.want, got), "\n"))
			}

			if rest.Rest() != tt.rest {
				t.Errorf("parse(%q) rest = %q, want %q", tt.input, rest.Rest(), tt.rest)
			}
		})
	}
}

type ruleErrorTest struct {
	name  string
	input string
	want  error
}

func runRuleErrorTests(t *testing.T, rule Parser[Expr], tests []ruleErrorTest) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := rule.Parse(tt.input)
			if err == nil {
				t.Fatalf("parse(%q) = %v, want error %v", tt.input, got, tt.want)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}

			if rest.Offset() != 0 {
				t.Errorf("parse(%q) consumed %d bytes on failure", tt.input, rest.Offset())
			}
		})
	}
}

func TestIntegerRule(t *testing.T) {
	runRuleTests(t, IntegerRule(), []ruleTest{
		{name: "single digit", input: "1", want: Integer{1}, rest: ""},
		{name: "two digits", input: "11", want: Integer{11}, rest: ""},
		{name: "trailing letters", input: "11dog", want: Integer{11}, rest: "dog"},
		{name: "zero", input: "0", want: Integer{0}, rest: ""},
		{name: "upper bound", input: "255", want: Integer{255}, rest: ""},
		{name: "leading zeros", input: "007", want: Integer{7}, rest: ""},
		{name: "leading whitespace", input: " \t\n42 ", want: Integer{42}, rest: " "},
		{name: "twelve digits", input: "000000000255", want: Integer{255}, rest: ""},
		{name: "thirteen digits", input: "0000000000001", want: Integer{0}, rest: "1"},
		{name: "digits then arrow", input: "3->", want: Integer{3}, rest: "->"},
	})
}

func TestIntegerRule_Errors(t *testing.T) {
	runRuleErrorTests(t, IntegerRule(), []ruleErrorTest{
		{name: "just above range", input: "256", want: ErrIntegerRange},
		{name: "far above range", input: "999999999999", want: ErrIntegerRange},
		{name: "run longer than twelve", input: "1234567890123", want: ErrIntegerRange},
		{name: "leading whitespace overflow", input: "  1000", want: ErrIntegerRange},
		{name: "empty", input: "", want: ErrNoMatch},
		{name: "whitespace only", input: "   ", want: ErrNoMatch},
		{name: "letters", input: "dog", want: ErrNoMatch},
		{name: "negative", input: "-1", want: ErrNoMatch},
	})
}

func TestVariableRule(t *testing.T) {
	runRuleTests(t, VariableRule(), []ruleTest{
		{name: "single letter", input: "p", want: Variable{"p"}, rest: ""},
		{name: "word", input: "poo", want: Variable{"poo"}, rest: ""},
		{name: "trailing space", input: "poo ", want: Variable{"poo"}, rest: " "},
		{name: "mixed case", input: "FooBar", want: Variable{"FooBar"}, rest: ""},
		{name: "stops at digit", input: " abc1", want: Variable{"abc"}, rest: "1"},
		{name: "stops at underscore", input: "a_b", want: Variable{"a"}, rest: "_b"},
	})
}

func TestVariableRule_Errors(t *testing.T) {
	runRuleErrorTests(t, VariableRule(), []ruleErrorTest{
		{name: "empty", input: "", want: ErrNoMatch},
		{name: "digit first", input: "1a", want: ErrNoMatch},
		{name: "underscore first", input: "_x", want: ErrNoMatch},
		{name: "non-ascii letter", input: "λ", want: ErrNoMatch},
		{name: "backslash", input: `\a -> a`, want: ErrNoMatch},
	})
}

func TestFunctionRule(t *testing.T) {
	runRuleTests(t, FunctionRule(), []ruleTest{
		{
			name:  "integer body",
			input: `\a -> 1`,
			want:  Function{"a", Integer{1}},
			rest:  "",
		},
		{
			name:  "nested function",
			input: `\a -> \b -> a`,
			want:  Function{"a", Function{"b", Variable{"a"}}},
			rest:  "",
		},
		{
			name:  "extra spacing",
			input: " \\a  ->  1 ",
			want:  Function{"a", Integer{1}},
			rest:  " ",
		},
		{
			name:  "no spacing",
			input: `\abc->x`,
			want:  Function{"abc", Variable{"x"}},
			rest:  "",
		},
		{
			name:  "newlines",
			input: "\\a\n->\n\t42",
			want:  Function{"a", Integer{42}},
			rest:  "",
		},
		{
			name:  "body leaves leftover",
			input: `\f -> 11dog`,
			want:  Function{"f", Integer{11}},
			rest:  "dog",
		},
	})
}

func TestFunctionRule_Errors(t *testing.T) {
	runRuleErrorTests(t, FunctionRule(), []ruleErrorTest{
		{name: "missing backslash", input: "a -> 1", want: ErrNoMatch},
		{name: "space before parameter", input: `\ a -> 1`, want: ErrNoMatch},
		{name: "digit parameter", input: `\1 -> a`, want: ErrNoMatch},
		{name: "missing arrow", input: `\a 1`, want: ErrNoMatch},
		{name: "half arrow", input: `\a - 1`, want: ErrNoMatch},
		{name: "missing body", input: `\a ->`, want: ErrExhausted},
		{name: "body overflow", input: `\a -> 256`, want: ErrIntegerRange},
		{name: "inner failure", input: `\a -> \b -> `, want: ErrExhausted},
	})
}

func TestExpression_Priority(t *testing.T) {
	runRuleTests(t, Expression(), []ruleTest{
		{name: "digits before letters", input: "123abc", want: Integer{123}, rest: "abc"},
		{name: "letters only", input: "abc", want: Variable{"abc"}, rest: ""},
		{
			name:  "variable without backslash",
			input: "abc -> 1",
			want:  Variable{"abc"},
			rest:  " -> 1",
		},
		{name: "function", input: `\x -> x`, want: Function{"x", Variable{"x"}}, rest: ""},
		{
			name:  "outer parameter referenced by inner body",
			input: `\a -> \b -> a`,
			want:  Function{"a", Function{"b", Variable{"a"}}},
			rest:  "",
		},
	})
}

func TestExpression_Exhausted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		also  error
	}{
		{name: "overflow", input: "256", also: ErrIntegerRange},
		{name: "arrow", input: "-> 1", also: ErrNoMatch},
		{name: "empty", input: "", also: ErrNoMatch},
		{name: "blank", input: " \t ", also: ErrNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rest, err := Expression().Parse(tt.input)
			if !errors.Is(err, ErrExhausted) {
				t.Fatalf("parse(%q) error = %v, want %v", tt.input, err, ErrExhausted)
			}

			if !errors.Is(err, tt.also) {
				t.Errorf("parse(%q) error = %v, want it to wrap %v", tt.input, err, tt.also)
			}

			if rest.Offset() != 0 {
				t.Errorf("parse(%q) consumed %d bytes on failure", tt.input, rest.Offset())
			}
		})
	}
}

func TestExpression_ReparseLeftover(t *testing.T) {
	_, rest, err := Expression().Parse("11dog 7")
	if err != nil {
		t.Fatal(err)
	}

	first, firstRest, firstErr := Expression()(rest)

	for range 10 {
		got, gotRest, gotErr := Expression()(rest)
		if !Equal(got, first) || gotRest != firstRest || (gotErr == nil) != (firstErr == nil) {
			t.Fatalf("reparse of %q not deterministic: got (%v, %q, %v), want (%v, %q, %v)",
				rest.Rest(), got, gotRest.Rest(), gotErr, first, firstRest.Rest(), firstErr)
		}
	}

	if !Equal(first, Variable{"dog"}) || firstRest.Rest() != " 7" {
		t.Errorf("reparse = (%v, %q), want (dog, %q)", first, firstRest.Rest(), " 7")
	}
}

func TestExpression_DeepNesting(t *testing.T) {
	const depth = 500

	input := strings.Repeat(`\x -> `, depth) + "x"

	got, rest, err := Expression().Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d := Depth(got); d != depth {
		t.Errorf("depth = %d, want %d", d, depth)
	}

	if !rest.EOF() {
		t.Errorf("rest = %q, want empty", rest.Rest())
	}
}
