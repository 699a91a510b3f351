package lang

import (
	"log/slog"
	"strconv"
)

// DefaultMaxDepth is the default maximum nesting depth of function bodies.
// Users may modify this before parsing to change the default.
var DefaultMaxDepth = 1000

// maxIntegerDigits bounds the digit run consumed by the integer rule.
const maxIntegerDigits = 12

// grammar builds the rules of the language. It holds only configuration;
// every Parser it returns is pure.
type grammar struct {
	maxDepth int
}

// Expression returns the rule that tries integer, variable, and function,
// in that order.
func Expression() Parser[Expr] {
	return grammar{maxDepth: DefaultMaxDepth}.expression(0)
}

// IntegerRule returns the rule ws digit{1,12}.
func IntegerRule() Parser[Expr] { return grammar{}.integer() }

// VariableRule returns the rule ws alpha{1,}.
func VariableRule() Parser[Expr] { return grammar{}.variable() }

// FunctionRule returns the rule ws '\' alpha{1,} ws "->" expr.
func FunctionRule() Parser[Expr] {
	return grammar{maxDepth: DefaultMaxDepth}.function(0)
}

// expression is the one ordered alternation shared by the top level and by
// function bodies.
func (g grammar) expression(depth int) Parser[Expr] {
	return Alt(
		g.integer(),
		g.variable(),
		g.function(depth),
	)
}

func (grammar) integer() Parser[Expr] {
	digits := TakeWhileMN(1, maxIntegerDigits, isDigit, "digit")

	return MapErr(WS(digits), func(s string) (Expr, error) {
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return nil, ErrIntegerRange.
				With(slog.String("digits", s)).
				Wrap(err)
		}

		return Integer{Value: uint8(n)}, nil
	})
}

func (grammar) variable() Parser[Expr] {
	return Map(WS(Alpha1), func(name string) Expr {
		return Variable{Name: name}
	})
}

// function parses the head \param -> and then recursively parses the body.
// The body rule is built only when the head matches, so constructing the
// grammar does not recurse.
func (g grammar) function(depth int) Parser[Expr] {
	head := Terminated(
		Preceded(WS(Char('\\')), Alpha1),
		WS(Tag("->")),
	)

	return func(c Cursor) (Expr, Cursor, error) {
		param, rest, err := head(c)
		if err != nil {
			return nil, c, err
		}

		if g.maxDepth > 0 && depth >= g.maxDepth {
			return nil, c, ErrMaxDepthExceeded.
				WithPosition(skipSpace(c).Position()).
				With(slog.Int("max_depth", g.maxDepth))
		}

		body, rest, err := g.expression(depth + 1)(rest)
		if err != nil {
			return nil, c, err
		}

		return Function{Param: param, Body: body}, rest, nil
	}
}
