//go:build unit

package pgstore

import (
	"encoding/json"
	"testing"
	"time"

	"gin-booking/internal/infra/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFields_TimeFieldsRoundTrip(t *testing.T) {
	now := time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC)
	createdAt := time.Date(2025, 4, 1, 8, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	var missing *time.Time

	payload, timeFields, err := encodeFields(map[string]any{
		"status":    "pending",
		"price":     120.5,
		"createdAt": createdAt,
		"updatedAt": docstore.ServerTimestamp,
		"deletedAt": missing,
	}, now)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"createdAt", "updatedAt"}, timeFields)

	var stored map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &stored))
	assert.Equal(t, "2025-03-31T23:00:00.000000000Z", stored["createdAt"])
	assert.Equal(t, "2025-04-02T10:30:00.000000000Z", stored["updatedAt"])
	assert.Nil(t, stored["deletedAt"])

	fields := decodeFields(stored, timeFields)
	assert.True(t, createdAt.Equal(fields["createdAt"].(time.Time)))
	assert.Equal(t, now, fields["updatedAt"])
	assert.Equal(t, "pending", fields["status"])
	assert.Equal(t, 120.5, fields["price"])
}

func TestDecodeFields_IgnoresOverwrittenTimeFields(t *testing.T) {
	// a merge can leave a name in time_fields after the value stopped being a timestamp
	fields := decodeFields(map[string]any{"createdAt": 12.0}, []string{"createdAt"})
	assert.Equal(t, 12.0, fields["createdAt"])

	assert.Empty(t, decodeFields(nil, []string{"createdAt"}))
}

func TestBuildQuery(t *testing.T) {
	testCases := []struct {
		name       string
		query      docstore.Query
		expectSQL  string
		expectArgs []any
	}{
		{
			name:       "collection only",
			query:      docstore.NewQuery("services"),
			expectSQL:  `SELECT id, fields, time_fields FROM documents WHERE collection = $1 ORDER BY id COLLATE "C" ASC`,
			expectArgs: []any{"services"},
		},
		{
			name:      "filter",
			query:     docstore.NewQuery("transactions").WhereEqual("userId", "u1"),
			expectSQL: `SELECT id, fields, time_fields FROM documents WHERE collection = $1 AND fields @> $2::jsonb ORDER BY id COLLATE "C" ASC`,
			expectArgs: []any{
				"transactions", `{"userId":"u1"}`,
			},
		},
		{
			name:  "filter and descending order",
			query: docstore.NewQuery("transactions").WhereEqual("status", "pending").Ordered("createdAt", docstore.Desc),
			expectSQL: `SELECT id, fields, time_fields FROM documents WHERE collection = $1 AND fields @> $2::jsonb` +
				` AND fields ? $3 ORDER BY` +
				` (CASE WHEN jsonb_typeof(fields -> $3) = 'string' THEN fields ->> $3 END) COLLATE "C" DESC,` +
				` fields -> $3 DESC, id COLLATE "C" ASC`,
			expectArgs: []any{"transactions", `{"status":"pending"}`, "createdAt"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := buildQuery(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.expectSQL, sql)
			assert.Equal(t, tc.expectArgs, args)
		})
	}
}
