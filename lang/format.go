package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kr/pretty"
)

// String returns the expression in native syntax.
func (i Integer) String() string { return strconv.FormatUint(uint64(i.Value), 10) }

// String returns the variable name.
func (v Variable) String() string { return v.Name }

// String returns the function in native syntax, e.g. \a -> \b -> a.
func (f Function) String() string {
	var sb strings.Builder

	_ = FormatExpr(&sb, f)

	return sb.String()
}

// FormatExpr writes e to w in native syntax. Parsing the output yields e
// again with no input left over.
func FormatExpr(w io.Writer, e Expr) error {
	for {
		switch v := e.(type) {
		case Integer:
			_, err := io.WriteString(w, strconv.FormatUint(uint64(v.Value), 10))

			return err

		case Variable:
			_, err := io.WriteString(w, v.Name)

			return err

		case Function:
			if _, err := fmt.Fprintf(w, "\\%s -> ", v.Param); err != nil {
				return err
			}

			// Bodies extend to the end of the expression, so no parentheses
			// are ever needed.
			e = v.Body

		default:
			return fmt.Errorf("unhandled case in FormatExpr: %T", e)
		}
	}
}

// Format writes the parsed expression in native syntax to the writer.
func (r *Result) Format(_ context.Context, w io.Writer) error {
	if err := FormatExpr(w, r.Expr); err != nil {
		return err
	}

	// Final newline
	_, err := fmt.Fprintln(w)

	return err
}

// FormatJSON writes the result as JSON to the writer.
func (r *Result) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(r, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(r)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the result as YAML to the writer.
func (r *Result) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, r.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// Print writes a debug representation of the result: the Go structure of the
// expression followed by the quoted leftover input.
func (r *Result) Print(_ context.Context, w io.Writer) error {
	_, err := pretty.Fprintf(w, "Expr: %# v\nRest: %q\n", r.Expr, r.Remaining())

	return err
}
