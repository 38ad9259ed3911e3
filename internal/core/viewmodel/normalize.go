// Package viewmodel turns loosely typed payloads from the remote API into the
// canonical shapes the dashboard screens render.
package viewmodel

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

const (
	// KeyField and CountField are the bucket fields the statistics
	// aggregation emits.
	KeyField   = "_id"
	CountField = "count"

	// UnknownKey labels a bucket whose key is null or missing.
	UnknownKey = "Unknown"
)

// NormalizeBuckets converts a raw bucket list into AggregateBuckets. The
// output has exactly one bucket per input element, in input order. Anything
// that is not a list, including an absent value, yields an empty slice.
func NormalizeBuckets(raw any, keyField, countField string) []domain.AggregateBucket {
	list := asList(raw)
	out := make([]domain.AggregateBucket, 0, len(list))
	for _, item := range list {
		fields, _ := item.(map[string]any)
		out = append(out, domain.AggregateBucket{
			Key:   bucketKey(fields[keyField]),
			Count: domain.NormalizeCount(fields[countField]),
		})
	}
	return out
}

func asList(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case []map[string]any:
		list := make([]any, len(v))
		for i := range v {
			list[i] = v[i]
		}
		return list
	default:
		return nil
	}
}

func bucketKey(v any) string {
	switch k := v.(type) {
	case nil:
		return UnknownKey
	case string:
		if strings.TrimSpace(k) == "" {
			return UnknownKey
		}
		return k
	case float64:
		return strconv.FormatFloat(k, 'f', -1, 64)
	case int:
		return strconv.Itoa(k)
	case bool:
		return strconv.FormatBool(k)
	default:
		b, err := json.Marshal(k)
		if err != nil {
			return UnknownKey
		}
		return string(b)
	}
}
