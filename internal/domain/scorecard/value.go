package scorecard

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

type object = map[string]any

func asObject(v any) (object, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func child(m object, key string) object {
	if m == nil {
		return nil
	}
	out, _ := asObject(m[key])
	return out
}

func has(m object, key string) bool {
	if m == nil {
		return false
	}
	_, ok := m[key]
	return ok
}

// firstString returns the first non-blank string among keys.
func firstString(m object, keys ...string) string {
	for _, key := range keys {
		if value := stringOf(m[key]); value != "" {
			return value
		}
	}
	return ""
}

func stringOf(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		if value == math.Trunc(value) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

func floatOf(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		clean := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
		if clean == "" {
			return 0, false
		}
		out, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0, false
		}
		return out, true
	default:
		return 0, false
	}
}

func intOf(v any) (int, bool) {
	f, ok := floatOf(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// firstInt returns the first key that holds a numeric value, or 0.
func firstInt(m object, keys ...string) int {
	for _, key := range keys {
		if out, ok := intOf(m[key]); ok {
			return out
		}
	}
	return 0
}

func firstFloat(m object, keys ...string) (float64, bool) {
	for _, key := range keys {
		if out, ok := floatOf(m[key]); ok {
			return out, true
		}
	}
	return 0, false
}

func firstID(m object, keys ...string) int64 {
	for _, key := range keys {
		if out, ok := floatOf(m[key]); ok {
			return int64(out)
		}
	}
	return 0
}

// records returns the object entries of a list, or the values of a map
// ordered by key in natural order ("bat_2" before "bat_10").
func records(v any) []object {
	switch value := v.(type) {
	case []any:
		out := make([]object, 0, len(value))
		for _, item := range value {
			if m, ok := asObject(item); ok {
				out = append(out, m)
			}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool { return naturalLess(keys[i], keys[j]) })
		out := make([]object, 0, len(value))
		for _, key := range keys {
			if m, ok := asObject(value[key]); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

func naturalLess(a, b string) bool {
	ap, an := splitNumericSuffix(a)
	bp, bn := splitNumericSuffix(b)
	if ap != bp {
		return ap < bp
	}
	if an != bn {
		return an < bn
	}
	return a < b
}

func splitNumericSuffix(s string) (string, int) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, -1
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return s, -1
	}
	return s[:i], n
}
