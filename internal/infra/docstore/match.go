package docstore

import (
	"cmp"
	"slices"
	"time"
)

// Apply filters and orders docs the way a query would on the server.
func Apply(q Query, docs []Document) []Document {
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if q.Where != nil && !Equal(d.Fields[q.Where.Field], q.Where.Value) {
			continue
		}
		if q.OrderBy != nil && !d.Has(q.OrderBy.Field) {
			continue
		}
		out = append(out, d)
	}

	if q.OrderBy != nil {
		Sort(out, *q.OrderBy)
	} else {
		slices.SortFunc(out, func(a, b Document) int { return cmp.Compare(a.ID, b.ID) })
	}
	return out
}

// Sort orders docs in place by one field, ties broken by id. Documents
// missing the field sort as null.
func Sort(docs []Document, o Order) {
	slices.SortStableFunc(docs, func(a, b Document) int {
		c := Compare(a.Fields[o.Field], b.Fields[o.Field])
		if o.Direction == Desc {
			c = -c
		}
		if c == 0 {
			return cmp.Compare(a.ID, b.ID)
		}
		return c
	})
}

func Equal(a, b any) bool {
	return Compare(a, b) == 0 && typeRank(a) == typeRank(b)
}

// Compare orders values by type first (null < bool < number < time < string), then by value.
func Compare(a, b any) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankBool:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	case rankNumber:
		return cmp.Compare(toFloat(a), toFloat(b))
	case rankTime:
		return toTime(a).Compare(toTime(b))
	case rankString:
		return cmp.Compare(a.(string), b.(string))
	default:
		return 0
	}
}

const (
	rankNull = iota
	rankBool
	rankNumber
	rankTime
	rankString
	rankOther
)

func typeRank(v any) int {
	switch v.(type) {
	case nil:
		return rankNull
	case bool:
		return rankBool
	case int, int32, int64, float32, float64:
		return rankNumber
	case time.Time, *time.Time:
		return rankTime
	case string:
		return rankString
	default:
		return rankOther
	}
}

func toFloat(v any) float64 {
	return Document{Fields: map[string]any{"v": v}}.Float("v")
}

func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	}
	return time.Time{}
}
