package sanitize

// Deep walks a decoded JSON value: string leaves are text-sanitized with the
// given cap, arrays are mapped element-wise, object values are sanitized with
// their keys kept verbatim, and every other type passes through unchanged.
func Deep(v any, maxLen int) any {
	switch val := v.(type) {
	case string:
		return Text(val, maxLen)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Deep(elem, maxLen)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = Deep(elem, maxLen)
		}
		return out
	default:
		return v
	}
}
