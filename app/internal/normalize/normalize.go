// Package normalize turns the heterogeneous raw field values Airtable
// returns (numbers, currency-formatted strings, missing keys) into canonical
// numeric and string forms. Every function is total: malformed or absent
// input yields the zero default, never an error.
package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
)

// currency symbols and separators stripped before parsing money strings
const moneyCutset = "$€£¥, \t"

// ParseMoney converts a raw cost value to a float64. Numeric values pass
// through unchanged; strings are stripped of currency symbols and thousands
// separators, then parsed. Anything unparseable yields 0.
func ParseMoney(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		cleaned := strings.TrimSpace(n)
		cleaned = strings.Map(func(r rune) rune {
			if strings.ContainsRune(moneyCutset, r) {
				return -1
			}
			return r
		}, cleaned)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return finite(f)
	default:
		return 0
	}
}

// Number coerces a raw field value to a float64, accepting numbers and
// plain numeric strings. Anything else yields 0.
func Number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return finite(f)
	default:
		return 0
	}
}

// Text coerces a raw field value to a string, yielding "" for anything that
// is not a string.
func Text(v any) string {
	s, _ := v.(string)
	return s
}

// TextOr is Text with an explicit fallback for absent or empty values.
func TextOr(v any, fallback string) string {
	if s := Text(v); s != "" {
		return s
	}
	return fallback
}

// Seconds extracts a session's duration in seconds, preferring the explicit
// "Duration (s)" column and falling back to "Calculated Duration (s)" when
// the explicit value is absent or zero.
func Seconds(fields entities.FieldBag) float64 {
	if d := Number(fields["Duration (s)"]); d != 0 {
		return d
	}
	return Number(fields["Calculated Duration (s)"])
}

// ToMinutes converts seconds to minutes, yielding 0 for non-finite input.
func ToMinutes(seconds float64) float64 {
	return finite(seconds) / 60
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
