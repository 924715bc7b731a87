package access

import (
	"context"
	"log/slog"

	"gin-booking/internal/domain/identity"
)

// Sessions opens a gate per identity event. Each request carries its own
// gate; nothing is shared between callers.
type Sessions struct {
	resolver Resolver
	logger   *slog.Logger
}

func NewSessions(resolver Resolver, logger *slog.Logger) *Sessions {
	return &Sessions{resolver: resolver, logger: logger}
}

// Open returns a gate settled for id; a nil id yields the signed-out tree.
func (s *Sessions) Open(ctx context.Context, id *identity.Identity) (*Gate, error) {
	gate := NewGate(s.resolver, s.logger)
	if err := gate.IdentityChanged(ctx, id); err != nil {
		return nil, err
	}
	return gate, nil
}
