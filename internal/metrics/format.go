package metrics

import (
	"fmt"
	"math"
	"strconv"
)

// FormatValue renders a metric value for text output.
func FormatValue(def Definition, value Value) string {
	v := JSONValue(def, value)
	if v == nil {
		return "-"
	}

	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return fmt.Sprintf("%.*f", def.Precision, n)
	default:
		return "-"
	}
}

// JSONValue converts a metric value into a JSON-safe scalar.
// Unavailable values return nil.
func JSONValue(def Definition, value Value) any {
	if !value.Available {
		return nil
	}

	switch def.Kind {
	case KindInteger:
		return int64(math.Round(value.Number))
	case KindFloat:
		if def.Precision < 0 {
			return value.Number
		}
		scale := math.Pow10(def.Precision)
		return math.Round(value.Number*scale) / scale
	default:
		return value.Number
	}
}
