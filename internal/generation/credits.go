package generation

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// FormatCredits renders a solar_credits balance the way the dashboard shows
// it: the longest numeric prefix is parsed, floored, and printed as an
// integer. Input with no numeric prefix renders as "NaN".
func FormatCredits(raw string) string {
	f := ParseCredits(raw)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	f = math.Floor(f)
	if f == 0 {
		return "0" // no "-0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseCredits parses the leading decimal literal of raw, skipping leading
// white space. Trailing garbage is ignored ("12kWh" is 12). It returns NaN
// when no literal is present.
func ParseCredits(raw string) float64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	prefix := decimalPrefix(s)
	if prefix == "" {
		return math.NaN()
	}

	unsigned := strings.TrimLeft(prefix, "+-")
	if unsigned == "Infinity" {
		if prefix[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	// Out-of-range literals come back as ±Inf with ErrRange, which is the
	// value we want.
	f, _ := strconv.ParseFloat(prefix, 64)
	return f
}

// decimalPrefix returns the longest prefix of s of the form
// [+-]? (Infinity | digits [. digits?] | . digits) ([eE] [+-]? digits)?
func decimalPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")]
	}

	intStart := i
	i = skipDigits(s, i)
	intDigits := i - intStart

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := skipDigits(s, i+1)
		fracDigits = j - (i + 1)
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := skipDigits(s, j); k > j {
			i = k
		}
	}

	return s[:i]
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
