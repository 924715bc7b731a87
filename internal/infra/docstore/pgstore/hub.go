package pgstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"gin-booking/internal/infra/docstore"

	"github.com/jackc/pgx/v5/pgxpool"
)

var errHubClosed = errors.New("notification hub closed")

// hub owns one dedicated connection that LISTENs for document changes and
// fans notifications out to the listeners of the affected collection.
type hub struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	mu      sync.Mutex
	subs    map[string]map[*listener]struct{}
	running bool
	closed  bool
	cancel  context.CancelFunc
}

func newHub(pool *pgxpool.Pool, logger *slog.Logger) *hub {
	return &hub{
		pool:   pool,
		logger: logger,
		subs:   make(map[string]map[*listener]struct{}),
	}
}

func (h *hub) subscribe(l *listener) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return errHubClosed
	}
	if !h.running {
		if err := h.start(); err != nil {
			return err
		}
	}
	if h.subs[l.query.Collection] == nil {
		h.subs[l.query.Collection] = make(map[*listener]struct{})
	}
	h.subs[l.query.Collection][l] = struct{}{}
	return nil
}

func (h *hub) unsubscribe(l *listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[l.query.Collection], l)
}

// must hold h.mu
func (h *hub) start() error {
	ctx, cancel := context.WithCancel(context.Background())

	conn, err := h.pool.Acquire(ctx)
	if err != nil {
		cancel()
		return err
	}
	if _, err := conn.Exec(ctx, "LISTEN "+NotifyChannel); err != nil {
		conn.Release()
		cancel()
		return err
	}

	// the connection keeps its LISTEN state, so it never goes back to the pool
	pgConn := conn.Hijack()
	h.running = true
	h.cancel = cancel

	go func() {
		defer func() {
			_ = pgConn.Close(context.Background())
		}()
		for {
			n, err := pgConn.WaitForNotification(ctx)
			if err != nil {
				h.stopped(ctx, err)
				return
			}
			h.broadcast(n.Payload)
		}
	}()
	return nil
}

func (h *hub) broadcast(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for l := range h.subs[collection] {
		select {
		case l.signal <- struct{}{}:
		default:
		}
	}
}

// stopped runs when the listening connection ends. Unless the hub was
// closed on purpose, every open listener fails with the cause.
func (h *hub) stopped(ctx context.Context, cause error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.running = false
	if ctx.Err() != nil {
		return
	}

	h.logger.Error("document change listener stopped", "error", cause.Error())
	for collection, ls := range h.subs {
		for l := range ls {
			select {
			case l.failed <- cause:
			default:
			}
		}
		delete(h.subs, collection)
	}
}

func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	if h.cancel != nil {
		h.cancel()
	}
	for collection, ls := range h.subs {
		for l := range ls {
			l.closeLocked()
		}
		delete(h.subs, collection)
	}
}

type listener struct {
	store  *Store
	ctx    context.Context
	query  docstore.Query
	signal chan struct{}
	failed chan error
	done   chan struct{}
	once   sync.Once
}

func (l *listener) Next() ([]docstore.Document, error) {
	select {
	case <-l.done:
		return nil, docstore.ErrListenerClosed
	case err := <-l.failed:
		return nil, err
	default:
	}

	select {
	case <-l.done:
		return nil, docstore.ErrListenerClosed
	case err := <-l.failed:
		return nil, err
	case <-l.signal:
		docs, err := l.store.Query(l.ctx, l.query)
		if err != nil {
			select {
			case <-l.done:
				return nil, docstore.ErrListenerClosed
			default:
			}
			return nil, err
		}
		return docs, nil
	}
}

func (l *listener) Stop() {
	l.once.Do(func() {
		close(l.done)
		l.store.hub.unsubscribe(l)
	})
}

// closeLocked is used by the hub while it already holds its lock.
func (l *listener) closeLocked() {
	l.once.Do(func() {
		close(l.done)
	})
}
