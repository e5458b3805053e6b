package modules

import "fmt"

// Option values arrive from YAML (int, []any) or TOML (int64, []any), and
// from Go callers as typed slices.

func boolOption(opts map[string]any, key string, def bool) (bool, error) {
	v, ok := opts[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected bool, got %T", key, v)
	}
	return b, nil
}

func stringsOption(opts map[string]any, key string) ([]string, error) {
	switch v := opts[key].(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%s: expected list of strings, got element %T", key, e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: expected list of strings, got %T", key, v)
	}
}

func intsOption(opts map[string]any, key string) ([]int, error) {
	switch v := opts[key].(type) {
	case nil:
		return nil, nil
	case []int:
		return v, nil
	case []any:
		out := make([]int, 0, len(v))
		for _, e := range v {
			switch n := e.(type) {
			case int:
				out = append(out, n)
			case int64:
				out = append(out, int(n))
			case float64:
				out = append(out, int(n))
			default:
				return nil, fmt.Errorf("%s: expected list of integers, got element %T", key, e)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: expected list of integers, got %T", key, v)
	}
}
