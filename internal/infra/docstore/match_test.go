//go:build unit

package docstore_test

import (
	"testing"
	"time"

	"gin-booking/internal/infra/docstore"

	"github.com/stretchr/testify/assert"
)

func ids(docs []docstore.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := []docstore.Document{
		{ID: "t1", Fields: map[string]any{"userId": "u1", "createdAt": base}},
		{ID: "t2", Fields: map[string]any{"userId": "u2", "createdAt": base.Add(time.Hour)}},
		{ID: "t3", Fields: map[string]any{"userId": "u2", "createdAt": base.Add(2 * time.Hour)}},
		{ID: "t4", Fields: map[string]any{"userId": "u2"}},
	}

	t.Run("order by createdAt desc excludes documents without the field", func(t *testing.T) {
		q := docstore.NewQuery("transactions").Ordered("createdAt", docstore.Desc)
		assert.Equal(t, []string{"t3", "t2", "t1"}, ids(docstore.Apply(q, docs)))
	})

	t.Run("equality filter", func(t *testing.T) {
		q := docstore.NewQuery("transactions").WhereEqual("userId", "u2")
		assert.Equal(t, []string{"t2", "t3", "t4"}, ids(docstore.Apply(q, docs)))
	})

	t.Run("filter and order combined", func(t *testing.T) {
		q := docstore.NewQuery("transactions").WhereEqual("userId", "u2").Ordered("createdAt", docstore.Asc)
		assert.Equal(t, []string{"t2", "t3"}, ids(docstore.Apply(q, docs)))
	})

	t.Run("string order is by value then id", func(t *testing.T) {
		services := []docstore.Document{
			{ID: "b", Fields: map[string]any{"name": "Wash"}},
			{ID: "a", Fields: map[string]any{"name": "Oil Change"}},
			{ID: "c", Fields: map[string]any{"name": "Oil Change"}},
		}
		q := docstore.NewQuery("services").Ordered("name", docstore.Asc)
		assert.Equal(t, []string{"a", "c", "b"}, ids(docstore.Apply(q, services)))
	})
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, docstore.Compare(int64(3), 3.0))
	assert.Equal(t, -1, docstore.Compare(nil, "a"))
	assert.Equal(t, -1, docstore.Compare(1.5, "1.5"))
	assert.False(t, docstore.Equal(1.5, "1.5"))
	assert.True(t, docstore.Equal("u2", "u2"))
}

func TestDocumentTime(t *testing.T) {
	ts := time.Date(2025, 3, 4, 5, 6, 7, 8, time.UTC)
	doc := docstore.Document{Fields: map[string]any{
		"a": ts,
		"b": ts.Format(time.RFC3339Nano),
		"c": 12.5,
	}}

	assert.Equal(t, ts, *doc.Time("a"))
	assert.Equal(t, ts, *doc.Time("b"))
	assert.Nil(t, doc.Time("c"))
	assert.Nil(t, doc.Time("missing"))
}

func TestQueryKey(t *testing.T) {
	q := docstore.NewQuery("transactions").WhereEqual("userId", "u2").Ordered("createdAt", docstore.Desc)
	assert.Equal(t, "transactions|userId==u2|createdAt desc", q.Key())
}
