package lang

import "encoding/json"

// MarshalJSON implements json.Marshaler for Result.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// ToMap converts the result to a native Go map structure.
func (r *Result) ToMap() map[string]any {
	return map[string]any{
		"expr": ToNative(r.Expr),
		"rest": r.Remaining(),
	}
}

// ToNative converts an expression to nested maps keyed by field name, with a
// "kind" entry naming the variant.
func ToNative(e Expr) map[string]any {
	switch v := e.(type) {
	case Integer:
		return map[string]any{
			"kind":  v.Kind().String(),
			"value": v.Value,
		}

	case Variable:
		return map[string]any{
			"kind": v.Kind().String(),
			"name": v.Name,
		}

	case Function:
		return map[string]any{
			"kind":  v.Kind().String(),
			"param": v.Param,
			"body":  ToNative(v.Body),
		}

	default:
		return nil
	}
}
