package parser

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SanitizeNumber coerces an arbitrary decoded JSON value into a finite float64.
// Strings get locale commas stripped before parsing ("12,345" becomes 12345).
// Anything unparseable (missing, null, bool, object, garbage text, NaN, Inf)
// degrades to 0 instead of erroring: a reviewable-but-wrong amount beats a hard
// failure, since a human reviews every record before it is saved.
func SanitizeNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return finite(f)
	default:
		return 0
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
