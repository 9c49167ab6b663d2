package interpreter

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// DecisionGate bridges the lifecycle's blocking confirmation request to an
// asynchronous external decision (e.g. a ConfirmCommand RPC or a UI button).
// RequestConfirmation parks the calling goroutine on a per-command channel
// until Resolve delivers the decision or the context expires.
//
// Channels are registered eagerly via Expect at command-creation time, so a
// decision arriving before the settle goroutine has parked is buffered and
// delivered instead of rejected.
//
// DecisionGate implements Confirmer and ConfirmationRegistrar.
type DecisionGate struct {
	mu      sync.Mutex
	waiters map[uuid.UUID]chan bool
}

// NewDecisionGate creates a new DecisionGate instance
func NewDecisionGate() *DecisionGate {
	return &DecisionGate{
		waiters: make(map[uuid.UUID]chan bool),
	}
}

// Expect registers the command as awaiting a decision before the confirmation
// wait has parked. Safe to call more than once for the same ID.
func (g *DecisionGate) Expect(id uuid.UUID) {
	g.channelFor(id)
}

// channelFor returns the decision channel for the command, creating it on
// first use. The single-slot buffer holds a decision delivered early.
func (g *DecisionGate) channelFor(id uuid.UUID) chan bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch, ok := g.waiters[id]
	if !ok {
		ch = make(chan bool, 1)
		g.waiters[id] = ch
	}
	return ch
}

// RequestConfirmation blocks until an external decision arrives for the
// command or ctx is done. A false return with a nil error means the user
// declined; a context error means the wait expired or was cancelled.
func (g *DecisionGate) RequestConfirmation(ctx context.Context, cmd *domain.TradeCommand) (bool, error) {
	ch := g.channelFor(cmd.ID)

	defer func() {
		g.mu.Lock()
		delete(g.waiters, cmd.ID)
		g.mu.Unlock()
	}()

	select {
	case approved := <-ch:
		return approved, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Resolve delivers the external decision for the command with the given ID.
// Returns domain.ErrCommandNotFound when no confirmation is awaited for that
// ID (already resolved, expired, or never requested). A decision delivered
// before the wait parks is buffered; a second decision for the same command
// is rejected.
func (g *DecisionGate) Resolve(id uuid.UUID, approved bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch, ok := g.waiters[id]
	if !ok {
		return domain.ErrCommandNotFound
	}

	select {
	case ch <- approved:
		return nil
	default:
		// Buffer already holds an undelivered decision.
		return domain.ErrCommandNotFound
	}
}

// Pending returns the IDs of commands currently awaiting a decision.
func (g *DecisionGate) Pending() []uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(g.waiters))
	for id := range g.waiters {
		ids = append(ids, id)
	}
	return ids
}
