package lang

//go:generate go tool stringer --linecomment --type Kind --output ast_string.go

// Expr is an expression in the lambda surface syntax.
//
// The set of implementations is closed: [Integer], [Variable], and
// [Function]. All three are comparable value types, so two expressions are
// structurally equal exactly when they compare equal with ==.
type Expr interface {
	// Kind reports which variant the expression is.
	Kind() Kind

	expr()
}

// Integer is an integer literal in the range 0..255.
type Integer struct {
	Value uint8
}

// Variable is a reference to a name made of ASCII letters.
type Variable struct {
	Name string
}

// Function is a single-parameter abstraction \Param -> Body.
type Function struct {
	Param string
	Body  Expr
}

func (Integer) Kind() Kind  { return KindInteger }
func (Variable) Kind() Kind { return KindVariable }
func (Function) Kind() Kind { return KindFunction }

func (Integer) expr()  {}
func (Variable) expr() {}
func (Function) expr() {}

// Kind indicates the variant of an [Expr].
type Kind int

const (
	// KindInvalid is the zero Kind; no expression reports it.
	KindInvalid Kind = iota // Invalid

	// KindInteger identifies an [Integer].
	KindInteger // Integer

	// KindVariable identifies a [Variable].
	KindVariable // Variable

	// KindFunction identifies a [Function].
	KindFunction // Function
)

// Equal reports whether a and b are structurally identical: the same variant
// with the same field values, recursively.
func Equal(a, b Expr) bool {
	return a == b
}

// Depth returns the number of nested functions in e.
func Depth(e Expr) int {
	n := 0

	for {
		fn, ok := e.(Function)
		if !ok {
			return n
		}

		n++
		e = fn.Body
	}
}
