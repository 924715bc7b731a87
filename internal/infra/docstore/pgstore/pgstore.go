// Package pgstore keeps documents in a single Postgres table with jsonb
// fields and pushes changes to listeners through LISTEN/NOTIFY.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/pkg/clock"
	"gin-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// NotifyChannel is raised by the documents trigger with the collection name as payload.
	NotifyChannel = "document_changes"

	pgErrCodeUniqueViolation = "23505"
)

type Store struct {
	pool   *pgxpool.Pool
	clock  clock.Clock
	logger *slog.Logger
	hub    *hub
}

var _ docstore.Store = (*Store)(nil)

func New(pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		pool:   pool,
		clock:  clk,
		logger: logger,
		hub:    newHub(pool, logger),
	}
}

// Close stops the notification listener; open listeners report ErrListenerClosed.
func (s *Store) Close() {
	s.hub.close()
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, fields, time_fields FROM documents WHERE collection = $1 AND id = $2`,
		collection, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return docstore.Document{}, docstore.ErrNotFound
		}
		return docstore.Document{}, errs.Wrapf(err, "get %s/%s", collection, id)
	}
	return doc, nil
}

func (s *Store) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	sql, args, err := buildQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Wrapf(err, "query %s", q.Key())
	}
	defer rows.Close()

	docs := make([]docstore.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, errs.Wrapf(err, "scan %s", q.Key())
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrapf(err, "query %s", q.Key())
	}
	return docs, nil
}

func buildQuery(q docstore.Query) (string, []any, error) {
	var sb strings.Builder
	args := []any{q.Collection}
	sb.WriteString(`SELECT id, fields, time_fields FROM documents WHERE collection = $1`)

	if q.Where != nil {
		filter, _, err := encodeFields(map[string]any{q.Where.Field: q.Where.Value}, time.Time{})
		if err != nil {
			return "", nil, err
		}
		args = append(args, filter)
		fmt.Fprintf(&sb, ` AND fields @> $%d::jsonb`, len(args))
	}

	if q.OrderBy != nil {
		args = append(args, q.OrderBy.Field)
		n := len(args)
		dir := "ASC"
		if q.OrderBy.Direction == docstore.Desc {
			dir = "DESC"
		}
		// strings compare bytewise whatever the database collation is
		fmt.Fprintf(&sb, ` AND fields ? $%[1]d ORDER BY`+
			` (CASE WHEN jsonb_typeof(fields -> $%[1]d) = 'string' THEN fields ->> $%[1]d END) COLLATE "C" %[2]s,`+
			` fields -> $%[1]d %[2]s, id COLLATE "C" ASC`, n, dir)
	} else {
		sb.WriteString(` ORDER BY id COLLATE "C" ASC`)
	}
	return sb.String(), args, nil
}

func (s *Store) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.Create(ctx, collection, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Create(ctx context.Context, collection, id string, fields map[string]any) error {
	payload, timeFields, err := encodeFields(fields, s.clock.Now())
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, fields, time_fields) VALUES ($1, $2, $3::jsonb, $4)`,
		collection, id, payload, timeFields)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return docstore.ErrAlreadyExists
		}
		return errs.Wrapf(err, "create %s/%s", collection, id)
	}
	return nil
}

func (s *Store) Set(ctx context.Context, collection, id string, fields map[string]any, opts ...docstore.SetOption) error {
	payload, timeFields, err := encodeFields(fields, s.clock.Now())
	if err != nil {
		return err
	}

	sql := `INSERT INTO documents (collection, id, fields, time_fields) VALUES ($1, $2, $3::jsonb, $4)
		ON CONFLICT (collection, id) DO UPDATE SET
			fields = EXCLUDED.fields,
			time_fields = EXCLUDED.time_fields,
			updated_at = now()`
	if docstore.HasMerge(opts) {
		sql = `INSERT INTO documents (collection, id, fields, time_fields) VALUES ($1, $2, $3::jsonb, $4)
		ON CONFLICT (collection, id) DO UPDATE SET
			fields = documents.fields || EXCLUDED.fields,
			time_fields = ARRAY(SELECT DISTINCT unnest(documents.time_fields || EXCLUDED.time_fields)),
			updated_at = now()`
	}

	if _, err := s.pool.Exec(ctx, sql, collection, id, payload, timeFields); err != nil {
		return errs.Wrapf(err, "set %s/%s", collection, id)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	payload, timeFields, err := encodeFields(fields, s.clock.Now())
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET
			fields = fields || $3::jsonb,
			time_fields = ARRAY(SELECT DISTINCT unnest(time_fields || $4::text[])),
			updated_at = now()
		WHERE collection = $1 AND id = $2`,
		collection, id, payload, timeFields)
	if err != nil {
		return errs.Wrapf(err, "update %s/%s", collection, id)
	}
	if tag.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id); err != nil {
		return errs.Wrapf(err, "delete %s/%s", collection, id)
	}
	return nil
}

func (s *Store) Listen(ctx context.Context, q docstore.Query) (docstore.Listener, error) {
	l := &listener{
		store:  s,
		ctx:    ctx,
		query:  q,
		signal: make(chan struct{}, 1),
		failed: make(chan error, 1),
		done:   make(chan struct{}),
	}
	// Queue the initial snapshot before the hub can see the listener. The
	// query runs on the first Next, after LISTEN is active, so no change is missed.
	l.signal <- struct{}{}
	if err := s.hub.subscribe(l); err != nil {
		return nil, errs.Wrap(err, "listen for document changes")
	}

	go func() {
		select {
		case <-ctx.Done():
			l.Stop()
		case <-l.done:
		}
	}()
	return l, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (docstore.Document, error) {
	var (
		id         string
		fields     map[string]any
		timeFields []string
	)
	if err := row.Scan(&id, &fields, &timeFields); err != nil {
		return docstore.Document{}, err
	}
	return docstore.Document{ID: id, Fields: decodeFields(fields, timeFields)}, nil
}

// encodeFields renders timestamps in docstore.TimeLayout and records which fields hold them.
func encodeFields(fields map[string]any, now time.Time) (string, []string, error) {
	out := make(map[string]any, len(fields))
	timeFields := make([]string, 0)
	for k, v := range fields {
		switch t := v.(type) {
		case time.Time:
			out[k] = t.UTC().Format(docstore.TimeLayout)
			timeFields = append(timeFields, k)
		case *time.Time:
			if t == nil {
				out[k] = nil
				continue
			}
			out[k] = t.UTC().Format(docstore.TimeLayout)
			timeFields = append(timeFields, k)
		default:
			if docstore.IsServerTimestamp(v) {
				out[k] = now.UTC().Format(docstore.TimeLayout)
				timeFields = append(timeFields, k)
				continue
			}
			out[k] = v
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return "", nil, errs.Wrap(err, "encode document fields")
	}
	return string(b), timeFields, nil
}

func decodeFields(fields map[string]any, timeFields []string) map[string]any {
	if fields == nil {
		fields = make(map[string]any)
	}
	for _, k := range timeFields {
		s, ok := fields[k].(string)
		if !ok {
			continue
		}
		if t, err := time.Parse(docstore.TimeLayout, s); err == nil {
			fields[k] = t
		}
	}
	return fields
}
