//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/docstore/pgstore"
	"gin-booking/internal/infra/repository/converter"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedAdmin writes an admin record, which is what grants the admin role.
func SeedAdmin(t *testing.T, store docstore.Store, uid, displayName string) {
	t.Helper()

	err := store.Create(t.Context(), converter.CollectionAdmins, uid,
		map[string]any{converter.FieldDisplayName: displayName})
	require.NoError(t, err)
}

// ResetDB removes every document between test cases.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return pgstore.Truncate(ctx, pool)
}
