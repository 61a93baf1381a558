package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ToInt converts a loosely typed table cell to an int.
// Numbers are truncated toward zero. Strings are trimmed and may carry
// thousands separators ("1,200"). Anything unparseable, including the
// wiki's "-" placeholder, yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(v)
	case float32:
		return ToInt(float64(v))
	case json.Number:
		return ToInt(string(v))
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" || s == "-" {
			return 0
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ToInt(f)
		}
		return 0
	case []byte:
		return ToInt(string(v))
	default:
		return 0
	}
}

// ToString converts a loosely typed table cell to a string. A nil cell is
// empty and whole floats print without a fractional part.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
