package order

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Field checks use loose JSON semantics: null, false, 0 and "" count as not provided,
// and amounts are read from the longest numeric prefix of their text form.

var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// isProvided reports whether v counts as a submitted value.
func isProvided(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := strconv.ParseFloat(val.String(), 64)
		return err != nil || (f != 0 && !math.IsNaN(f))
	case float64:
		return val != 0 && !math.IsNaN(val)
	default:
		return true
	}
}

// textOf renders v the way it is rendered when concatenated with a string.
func textOf(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			if e != nil {
				parts[i] = textOf(e)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// isNumericSpace reports whether r may precede a number: Unicode white space and the byte order mark,
// excluding U+0085 (NEL).
func isNumericSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

// parseAmount reads the longest leading decimal literal of v's text form.
// It returns NaN when the text does not start with a number.
func parseAmount(v any) float64 {
	s := strings.TrimLeftFunc(textOf(v), isNumericSpace)

	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(prefix, 64)
	// Out-of-range literals still yield ±Inf or ±0, which is what callers need to see.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return f
}
