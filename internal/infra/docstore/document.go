package docstore

import (
	"encoding/json"
	"time"
)

// TimeLayout is fixed width so that UTC values sort lexicographically.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

type Document struct {
	ID     string
	Fields map[string]any
}

func (d Document) Has(field string) bool {
	_, ok := d.Fields[field]
	return ok
}

func (d Document) Text(field string) string {
	if s, ok := d.Fields[field].(string); ok {
		return s
	}
	return ""
}

func (d Document) Float(field string) float64 {
	switch v := d.Fields[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

func (d Document) Int(field string) int64 {
	switch v := d.Fields[field].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Time normalizes timestamp-typed fields; nil when absent or not a timestamp.
func (d Document) Time(field string) *time.Time {
	switch v := d.Fields[field].(type) {
	case time.Time:
		t := v.UTC()
		return &t
	case *time.Time:
		if v == nil {
			return nil
		}
		t := v.UTC()
		return &t
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil
		}
		t = t.UTC()
		return &t
	default:
		return nil
	}
}

// CopyFields returns a shallow copy.
func CopyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// ResolveServerTimestamps replaces ServerTimestamp sentinels with now.
func ResolveServerTimestamps(fields map[string]any, now time.Time) map[string]any {
	out := CopyFields(fields)
	for k, v := range out {
		if IsServerTimestamp(v) {
			out[k] = now
		}
	}
	return out
}
