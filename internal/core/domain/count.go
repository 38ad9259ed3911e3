package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NormalizeCount coerces a loosely typed count into a non-negative integer.
// Numbers are truncated; strings are stripped of every non-digit character
// and parsed. Anything else, and any value that does not yield a usable
// number, becomes 0.
func NormalizeCount(v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return clampCount(float64(n))
	case int32:
		return clampCount(float64(n))
	case int64:
		return clampCount(float64(n))
	case float32:
		return clampCount(float64(n))
	case float64:
		return clampCount(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return clampCount(f)
		}
		return NormalizeCount(n.String())
	case string:
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, n)
		if digits == "" {
			return 0
		}
		parsed, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || parsed > math.MaxInt32 {
			return 0
		}
		return int(parsed)
	default:
		return 0
	}
}

func clampCount(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt32 {
		return 0
	}
	return int(math.Trunc(f))
}

// Count is an integer decoded from either a JSON number or a string such as
// "12 applicants". Undecodable input decodes as 0 instead of failing.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		*c = 0
		return nil
	}
	*c = Count(NormalizeCount(raw))
	return nil
}

// Text is a string decoded from either a JSON string or a JSON number.
// null decodes as the empty string.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(v)
	case float64:
		*t = Text(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		*t = Text(strconv.FormatBool(v))
	default:
		*t = Text(strings.TrimSpace(string(b)))
	}
	return nil
}
