package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Alias resolution for the heterogeneous vehicle corpus. Callers pass
// candidates in priority order (current schema field first, then the legacy
// aliases); the resolvers pick the first usable value and never error.
// Absence degrades to nil / "" / empty slice.

// ResolveScalar returns the first candidate that is a non-empty string or a
// finite number, or nil when none qualifies.
func ResolveScalar(candidates ...any) any {
	for _, c := range candidates {
		if s, ok := c.(string); ok {
			if s != "" {
				return s
			}
			continue
		}
		if n, ok := toNumber(c); ok {
			return n
		}
	}
	return nil
}

// ResolveNumber returns the first candidate coercible to a finite number.
// Strings count when they lead with digits ("249 cc" → 249, "45 kmpl" → 45),
// which is how the string+unit format stores its measurements.
func ResolveNumber(candidates ...any) *float64 {
	for _, c := range candidates {
		if n, ok := toNumber(c); ok {
			return &n
		}
	}
	return nil
}

// ResolveString returns the first candidate that is a non-empty string.
func ResolveString(candidates ...any) string {
	for _, c := range candidates {
		if s, ok := c.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// NumberWithUnit renders a measurement the way the current schema stores it.
// Non-empty strings pass through unchanged; finite numbers become
// "<n> <unit>"; anything else reports absence, an empty string included.
func NumberWithUnit(raw any, unit string) (string, bool) {
	if s, ok := raw.(string); ok {
		return s, s != ""
	}
	if n, ok := toNumber(raw); ok {
		return strings.TrimSpace(fmt.Sprintf("%s %s", formatNumber(n), unit)), true
	}
	return "", false
}

// EnsureStringArray coerces a raw field into a clean string slice: arrays are
// stringified and emptied of blanks, a comma-bearing string is split and
// trimmed, any other scalar becomes a singleton, nil becomes empty.
func EnsureStringArray(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case primitive.A:
		return anySliceToStrings(v)
	case []any:
		return anySliceToStrings(v)
	case string:
		if v == "" {
			return []string{}
		}
		if strings.Contains(v, ",") {
			parts := strings.Split(v, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			return out
		}
		return []string{v}
	default:
		if s := stringifyScalar(v); s != "" {
			return []string{s}
		}
		return []string{}
	}
}

func anySliceToStrings(items []any) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := stringifyScalar(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringifyScalar(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	default:
		if n, ok := toNumber(v); ok {
			return formatNumber(n)
		}
		return ""
	}
}

// toNumber coerces the numeric types the bson decoder produces, plus strings
// with a leading number. Non-finite floats never qualify.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		return leadingNumber(n)
	default:
		return 0, false
	}
}

// leadingNumber parses the numeric prefix of strings like "249 cc", "45kmpl"
// or "185000".
func leadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	end := 0
	seenDigit := false
	for i, r := range s {
		if r >= '0' && r <= '9' {
			seenDigit = true
			end = i + 1
			continue
		}
		if (r == '-' || r == '+') && i == 0 {
			end = i + 1
			continue
		}
		if r == '.' && seenDigit {
			end = i + 1
			continue
		}
		break
	}
	if !seenDigit {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
