package pgstore

import (
	"context"
	_ "embed"

	"gin-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the documents table and its change trigger. It is idempotent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "apply documents schema")
	}
	return nil
}

// Truncate removes every document. Used to reset state between test cases.
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `TRUNCATE TABLE documents`); err != nil {
		return errs.Wrap(err, "truncate documents")
	}
	return nil
}
