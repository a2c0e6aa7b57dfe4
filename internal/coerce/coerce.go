// Package coerce provides best-effort coercions from loosely-typed JSON
// values (as decoded into any by encoding/json) to canonical Go values.
// Every function is total: malformed input degrades to a zero value or an
// empty result, never an error.
package coerce

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	bulletRe  = regexp.MustCompile(`^\s*[-*•]\s+`)
)

// ISODate extracts a YYYY-MM-DD calendar date from the start of a string
// value. Trailing content (time suffixes, free text) is ignored. Non-string
// or non-matching input yields "".
func ISODate(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	m := isoDateRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1] + "-" + m[2] + "-" + m[3]
}

// EpochOK returns the Unix timestamp of UTC midnight for an ISO date, with
// ok=false when the date is empty or does not resolve to a real calendar day
// (e.g. 2024-02-30).
func EpochOK(iso string) (int64, bool) {
	if iso == "" {
		return 0, false
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return 0, false
	}
	return t.Unix(), true
}

// Epoch is EpochOK with 0 standing in for "no date". Used for sort keys
// where undated entries sink together.
func Epoch(iso string) int64 {
	e, _ := EpochOK(iso)
	return e
}

// String stringifies a scalar the way loosely-typed data expects: strings
// pass through, numbers render without a trailing ".0", booleans render as
// true/false, nil becomes "". Composite values fall back to a compact JSON
// dump so nothing is silently lost.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// StringList coerces a scalar-or-list value into a slice of non-blank,
// trimmed strings. A bare scalar is treated as a one-element list; nil
// yields nil.
func StringList(v any) []string {
	var raw []any
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		raw = x
	default:
		raw = []any{x}
	}
	var out []string
	for _, e := range raw {
		s := strings.TrimSpace(String(e))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Lines turns a free-form "approach" value into bulleted lines.
//
// Arrays keep their elements (stringified, blanks dropped). Strings are
// split on line breaks with a leading bullet marker (-, * or • plus
// whitespace) stripped from each line; when no non-blank line survives the
// whole trimmed string is used as a single line. Any other value becomes a
// single stringified line. A blank result yields nil.
func Lines(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		var out []string
		for _, e := range x {
			s := String(e)
			if strings.TrimSpace(s) == "" {
				continue
			}
			out = append(out, s)
		}
		return out
	case string:
		var out []string
		for _, line := range strings.Split(x, "\n") {
			line = strings.TrimSuffix(line, "\r")
			line = strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
			if line == "" {
				continue
			}
			out = append(out, line)
		}
		if len(out) == 0 {
			if whole := strings.TrimSpace(x); whole != "" {
				return []string{whole}
			}
			return nil
		}
		return out
	default:
		s := String(x)
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return []string{s}
	}
}

// Number coerces numbers and numeric strings to float64. Anything else,
// including unparseable strings, yields 0.
func Number(v any) float64 {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) {
			return 0
		}
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) {
			return 0
		}
		return f
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Clamp bounds n to the closed range [lo, hi].
func Clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

// Truthy applies loose-data truthiness: nil, false, 0 and "" are false,
// everything else (including composite values) is true.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
