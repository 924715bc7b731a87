package queries

import (
	"context"

	"gin-booking/internal/domain/identity"
	"gin-booking/internal/usecase/access"
)

type SessionQueries interface {
	// Current reports the gate state for who; nil means signed out.
	Current(ctx context.Context, who *identity.Identity) (*access.Snapshot, error)
}

type sessionQueriesImpl struct {
	sessions *access.Sessions
}

func NewSessionQueries(sessions *access.Sessions) SessionQueries {
	return &sessionQueriesImpl{sessions: sessions}
}

func (q *sessionQueriesImpl) Current(ctx context.Context, who *identity.Identity) (*access.Snapshot, error) {
	gate, err := q.sessions.Open(ctx, who)
	if err != nil {
		return nil, err
	}
	snap := gate.Snapshot()
	return &snap, nil
}
