// Package lang parses a small lambda-calculus surface syntax into an
// abstract syntax tree.
//
// # Grammar
//
// Informal EBNF:
//
//	expr      → integer | variable | function
//	integer   → ws digit{1,12}             (value must fit in 0..255)
//	variable  → ws alpha{1,}
//	function  → ws '\' alpha{1,} ws "->" expr
//	ws        → whitespace*                (skipped, not part of the AST)
//
// Only leading whitespace is skipped by each token. Whatever follows the
// last token of an expression is returned to the caller untouched.
//
// # Rules
//
// Every rule is a [Parser]: a function from a [Cursor] to a value and the
// Cursor after it. A rule that fails hands back the Cursor it was given, so
// [Alt] can try the next alternative from the same position. The grammar is
// assembled from a handful of combinators ([WS], [Alt], [Char], [Tag],
// [TakeWhileMN], [Map], [MapErr], [Preceded], [Terminated]); function bodies
// recurse into the same ordered alternation used at the top level.
//
// # Example
//
//	r, err := lang.ParseString(ctx, `\a -> \b -> a`)
//	// r.Expr == lang.Function{Param: "a", Body: lang.Function{
//	//     Param: "b", Body: lang.Variable{Name: "a"}}}
//	// r.Remaining() == ""
//
//	r, err = lang.ParseString(ctx, "11dog")
//	// r.Expr == lang.Integer{Value: 11}, r.Remaining() == "dog"
//
// # Errors
//
// Failures are [*Error] values refined from the sentinels [ErrNoMatch],
// [ErrIntegerRange], [ErrExhausted], [ErrMaxDepthExceeded], and
// [ErrTrailingInput]; test for them with errors.Is. Errors carry the input
// [Position] and implement slog.LogValuer.
package lang
