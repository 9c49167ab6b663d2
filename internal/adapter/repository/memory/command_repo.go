// Package memory provides an in-memory CommandRepository used as bounded
// working memory and by hosts running without a database. Entries beyond the
// configured bound are truncated oldest-first; the Postgres repository is
// the unbounded audit trail.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// DefaultBound is the default number of commands kept in working memory.
const DefaultBound = 10

// commandRepository implements domain.CommandRepository in memory.
type commandRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*domain.TradeCommand
	order []uuid.UUID // insertion order, oldest first
	bound int
}

// NewCommandRepository creates an in-memory command repository.
// bound caps how many commands are retained; pass 0 to use DefaultBound,
// or a negative value for an unbounded store (tests).
func NewCommandRepository(bound int) domain.CommandRepository {
	if bound == 0 {
		bound = DefaultBound
	}
	return &commandRepository{
		byID:  make(map[uuid.UUID]*domain.TradeCommand),
		bound: bound,
	}
}

// Create appends a new command, truncating the oldest entry when the bound
// is exceeded.
func (r *commandRepository) Create(_ context.Context, cmd *domain.TradeCommand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[cmd.ID] = cmd.Clone()
	r.order = append(r.order, cmd.ID)

	for r.bound > 0 && len(r.order) > r.bound {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.byID, oldest)
	}
	return nil
}

// UpdateStatus replaces the stored entry for the command's ID.
// A command already truncated out of working memory yields ErrCommandNotFound.
func (r *commandRepository) UpdateStatus(_ context.Context, id uuid.UUID, cmd *domain.TradeCommand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrCommandNotFound
	}
	r.byID[id] = cmd.Clone()
	return nil
}

// GetByID retrieves a command by its ID.
func (r *commandRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.TradeCommand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCommandNotFound
	}
	return cmd.Clone(), nil
}

// ListRecent returns up to limit commands, newest first.
func (r *commandRepository) ListRecent(_ context.Context, limit int) ([]*domain.TradeCommand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.order) {
		limit = len(r.order)
	}

	out := make([]*domain.TradeCommand, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.byID[r.order[i]].Clone())
	}
	return out, nil
}
