// Package memory keeps recommendation sessions in a bounded in-process ring.
// Oldest sessions are evicted once the cap is hit; restarts drop everything,
// which is acceptable for an ephemeral interaction log.
package memory

import (
	"context"
	"sync"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

const defaultCapacity = 100

type SessionRepository struct {
	mu       sync.Mutex
	sessions []domain.Session
	capacity int
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{capacity: defaultCapacity}
}

func (r *SessionRepository) Save(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions = append(r.sessions, session)
	if len(r.sessions) > r.capacity {
		r.sessions = r.sessions[len(r.sessions)-r.capacity:]
	}
	return nil
}

func (r *SessionRepository) Recent(_ context.Context, limit int) ([]domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.sessions) {
		limit = len(r.sessions)
	}

	// Newest first.
	out := make([]domain.Session, 0, limit)
	for i := len(r.sessions) - 1; i >= len(r.sessions)-limit; i-- {
		out = append(out, r.sessions[i])
	}
	return out, nil
}
