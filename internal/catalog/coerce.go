package catalog

// coerce.go provides type coercion for loosely-typed external values.
//
// Catalog sources disagree on types: prices arrive as numbers or as currency
// strings ("$3.50", "1,200 kr"), availability as booleans or "true"/"1"
// strings, applications as a list or a bare scalar. These functions are the
// only place that coercion happens; the normalizers call them and never
// duplicate the logic.

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToPrice converts a raw price value to a float pointer.
// Numeric input passes through. String input is stripped of every character
// outside [0-9.] before parsing, so currency symbols and thousands
// separators are tolerated. Empty or unparseable input yields nil, which is
// a valid terminal state ("no price"), not an error.
func ToPrice(raw any) *float64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		cleaned := stripNonNumeric(v)
		if cleaned == "" {
			return nil
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// stripNonNumeric removes every rune outside [0-9.].
func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToBool converts a raw availability value to a bool.
// Native booleans pass through. The strings "true" and "1" coerce to true;
// any other defined value, the empty string included, coerces to false.
// Only nil yields def, letting each source format keep its own default
// policy for absent fields.
func ToBool(raw any, def bool) bool {
	switch v := raw.(type) {
	case nil:
		return def
	case bool:
		return v
	case string:
		s := strings.TrimSpace(strings.ToLower(v))
		return s == "true" || s == "1"
	default:
		return false
	}
}

// ToStringList converts a raw value to a string list.
// Slices pass through with elements stringified; a single non-empty scalar
// becomes a one-element list; nil or empty input becomes an empty list.
func ToStringList(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		if v == nil {
			return []string{}
		}
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringify(item))
		}
		return out
	default:
		s := stringify(v)
		if s == "" {
			return []string{}
		}
		return []string{s}
	}
}

// stringify renders a raw field value as a string for display fields.
// Floats drop the trailing ".0" that fmt would print for whole numbers
// decoded from JSON.
func stringify(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CleanCell removes common CSV artifacts from a cell value:
// - Trims whitespace and UTF-8 BOM
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.TrimSpace(s)

	// Remove leading '='
	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	// Remove any surrounding quotes
	s = strings.Trim(s, `"'`)

	return s
}
