// Package interpreter owns the trade-command lifecycle: it turns parsed
// intents into ledger-recorded TradeCommands and drives them through the
// pending -> confirmed/cancelled -> executed/failed state machine.
//
// Every failure path terminates in a stable, inspectable status; lifecycle
// errors are captured into the command's terminal state rather than thrown,
// so a single malformed or rejected command can never crash the host.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
	"github.com/ruimtorres/tradedesk-backend/internal/usecase/analyzer"
	"github.com/ruimtorres/tradedesk-backend/internal/usecase/parser"
)

// RecentHistorySize bounds the working-memory view of the ledger. The audit
// trail itself is unbounded; this only limits what History returns by default.
const RecentHistorySize = 10

// DefaultConfirmationTTL bounds how long a command may sit pending before
// the confirmation wait expires and the command is cancelled.
const DefaultConfirmationTTL = 2 * time.Minute

// Confirmer is the external collaborator that obtains the user's yes/no
// decision for commands flagged as requiring confirmation.
type Confirmer interface {
	// RequestConfirmation blocks until a decision arrives or ctx is done.
	RequestConfirmation(ctx context.Context, cmd *domain.TradeCommand) (bool, error)
}

// ConfirmationRegistrar is implemented by confirmers that accept a decision
// arriving before the confirmation wait has parked. When the confirmer
// implements it, the lifecycle registers every confirmation-required command
// at creation time, closing the window in which an immediate external
// decision would be rejected.
type ConfirmationRegistrar interface {
	Expect(id uuid.UUID)
}

// ExecutionResult is the outcome reported by the execution collaborator.
type ExecutionResult struct {
	Success bool
	OrderID string
	Message string
}

// Executor is the external collaborator that settles an approved command.
// This core never performs real order routing itself.
type Executor interface {
	Execute(ctx context.Context, cmd *domain.TradeCommand) (*ExecutionResult, error)
}

// commandState is the lifecycle's private bookkeeping for a live command.
type commandState struct {
	cmd *domain.TradeCommand

	// cancelWait aborts a parked confirmation request on direct cancellation.
	cancelWait context.CancelFunc

	// executionIssued flips to true just before the execution call goes out;
	// from that point on the command can no longer be cancelled.
	executionIssued bool
}

// Service orchestrates parsing, analysis and the command lifecycle.
// It is the sole owner of the ledger: all mutation is id-keyed status
// replacement, never structural modification of prior entries.
type Service struct {
	parser     *parser.Parser
	market     domain.MarketDataProvider
	portfolio  domain.PortfolioProvider
	confirmer  Confirmer
	executor   Executor
	ledger     domain.CommandRepository
	confirmTTL time.Duration

	mu          sync.Mutex
	commands    map[uuid.UUID]*commandState
	pendingID   uuid.UUID // command currently awaiting manual confirmation
	subscribers []Subscriber

	wg sync.WaitGroup
}

// NewService creates a new lifecycle Service.
// confirmTTL bounds the confirmation wait; pass 0 to use DefaultConfirmationTTL.
func NewService(
	p *parser.Parser,
	market domain.MarketDataProvider,
	portfolio domain.PortfolioProvider,
	confirmer Confirmer,
	executor Executor,
	ledger domain.CommandRepository,
	confirmTTL time.Duration,
) *Service {
	if confirmTTL == 0 {
		confirmTTL = DefaultConfirmationTTL
	}
	return &Service{
		parser:     p,
		market:     market,
		portfolio:  portfolio,
		confirmer:  confirmer,
		executor:   executor,
		ledger:     ledger,
		confirmTTL: confirmTTL,
		commands:   make(map[uuid.UUID]*commandState),
	}
}

// Subscribe registers an observer for lifecycle events.
func (s *Service) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Interpret converts free-text input into a risk-scored TradeCommand,
// records it in the ledger and starts its settlement.
//
// Returns domain.ErrNoMatch when the text is not a trading command. On
// success the returned command is a snapshot taken at creation; settlement
// continues asynchronously and is observable through events, Get and History.
func (s *Service) Interpret(ctx context.Context, text string) (*domain.TradeCommand, error) {
	res, err := s.parser.Parse(text)
	if err != nil {
		return nil, err
	}

	tradingCtx, err := s.portfolio.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trading context: %w", err)
	}

	// Capture the market snapshot once; it is never re-fetched mid-lifecycle.
	var snapshot *domain.MarketSnapshot
	if res.Intent.Asset != "" && needsMarketData(res.Intent.Action) {
		snapshot, err = s.market.GetSnapshot(ctx, res.Intent.Asset)
		if err != nil {
			return nil, fmt.Errorf("failed to get market snapshot for %s: %w", res.Intent.Asset, err)
		}
	}

	ann := analyzer.Annotate(&res.Intent, tradingCtx, snapshot)

	if res.Intent.Action == domain.ActionSell && res.Intent.Percentage != nil &&
		tradingCtx.PositionFor(res.Intent.Asset) == nil {
		slog.Warn("sell-by-percentage references asset with no open position; estimated cost is zero",
			"asset", res.Intent.Asset)
	}

	cmd := &domain.TradeCommand{
		ID:                   uuid.New(),
		OriginalText:         text,
		Intent:               res.Intent,
		Confidence:           res.Confidence,
		EstimatedCost:        ann.EstimatedCost,
		MarketImpact:         ann.MarketImpact,
		RiskLevel:            ann.RiskLevel,
		ConfirmationRequired: ann.ConfirmationRequired,
		Status:               domain.StatusPending,
		CreatedAt:            time.Now(),
	}
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	if err := s.ledger.Create(ctx, cmd); err != nil {
		return nil, fmt.Errorf("failed to record command: %w", err)
	}

	// Register the decision slot before the caller learns the command ID,
	// so a decision delivered right after this call returns is never lost.
	if cmd.ConfirmationRequired {
		if reg, ok := s.confirmer.(ConfirmationRegistrar); ok {
			reg.Expect(cmd.ID)
		}
	}

	s.emit(ctx, Event{
		Kind:      EventCommandCreated,
		CommandID: cmd.ID,
		NewStatus: cmd.Status,
		Command:   cmd.Clone(),
		Timestamp: time.Now(),
	})

	// Settlement must outlive the caller's request context.
	settleCtx, cancelWait := context.WithCancel(context.WithoutCancel(ctx))
	state := &commandState{cmd: cmd, cancelWait: cancelWait}

	s.mu.Lock()
	var superseded *commandState
	if cmd.ConfirmationRequired {
		// A newly pending command supersedes the previous one: the prior
		// pending command is cancelled rather than left dangling.
		if s.pendingID != uuid.Nil {
			superseded = s.commands[s.pendingID]
		}
		s.pendingID = cmd.ID
	}
	s.commands[cmd.ID] = state
	s.mu.Unlock()

	if superseded != nil {
		s.cancelState(settleCtx, superseded)
	}

	s.wg.Add(1)
	go s.settle(settleCtx, state)

	return cmd.Clone(), nil
}

// Cancel cancels a pending command directly, without invoking the execution
// collaborator. Once the execution call has been issued the command must
// resolve to EXECUTED or FAILED and Cancel returns ErrCancelTooLate.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	state, ok := s.commands[id]
	if !ok {
		s.mu.Unlock()
		// Not live: either unknown or already settled.
		cmd, err := s.ledger.GetByID(ctx, id)
		if err != nil {
			return domain.ErrCommandNotFound
		}
		if cmd.Status.IsTerminal() {
			return domain.ErrInvalidTransition
		}
		return domain.ErrCommandNotFound
	}
	if state.executionIssued {
		s.mu.Unlock()
		return domain.ErrCancelTooLate
	}
	if state.cmd.Status != domain.StatusPending {
		s.mu.Unlock()
		return domain.ErrInvalidTransition
	}
	s.mu.Unlock()

	s.cancelState(ctx, state)
	return nil
}

// Get retrieves a command from the ledger by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.TradeCommand, error) {
	return s.ledger.GetByID(ctx, id)
}

// History returns the most recent commands, newest first.
// limit <= 0 uses the working-memory bound of RecentHistorySize.
func (s *Service) History(ctx context.Context, limit int) ([]*domain.TradeCommand, error) {
	if limit <= 0 {
		limit = RecentHistorySize
	}
	return s.ledger.ListRecent(ctx, limit)
}

// PendingCommand returns a snapshot of the command currently awaiting manual
// confirmation, or nil when none is pending.
func (s *Service) PendingCommand() *domain.TradeCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingID == uuid.Nil {
		return nil
	}
	if state, ok := s.commands[s.pendingID]; ok {
		return state.cmd.Clone()
	}
	return nil
}

// Wait blocks until all in-flight settlements have finished. Intended for
// graceful shutdown and tests.
func (s *Service) Wait() {
	s.wg.Wait()
}

// needsMarketData reports whether the action's analysis reads a snapshot.
// Status and cancel utterances have no cost/impact to compute.
func needsMarketData(action domain.Action) bool {
	switch action {
	case domain.ActionStatus, domain.ActionCancel:
		return false
	default:
		return true
	}
}

// settle drives a command from PENDING to a terminal state: it awaits the
// confirmation decision when one is required, then issues the execution call
// at most once. Runs in its own goroutine, one per command.
func (s *Service) settle(ctx context.Context, state *commandState) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.commands, state.cmd.ID)
		if s.pendingID == state.cmd.ID {
			s.pendingID = uuid.Nil
		}
		s.mu.Unlock()
	}()

	if state.cmd.ConfirmationRequired {
		// Snapshot under the mutex: a concurrent Cancel or supersede mutates
		// cmd.Status through transition while we park on the confirmer.
		s.mu.Lock()
		snap := state.cmd.Clone()
		s.mu.Unlock()

		waitCtx, cancel := context.WithTimeout(ctx, s.confirmTTL)
		approved, err := s.confirmer.RequestConfirmation(waitCtx, snap)
		cancel()

		if err != nil {
			// Expired wait or direct cancellation. A direct Cancel has
			// already transitioned the command; the transition below is
			// then a no-op rejected by the state machine.
			if terr := s.transition(ctx, state, domain.StatusCancelled); terr == nil {
				slog.Info("command cancelled: confirmation wait ended",
					"command_id", state.cmd.ID, "reason", err)
			}
			return
		}
		if !approved {
			// A declined confirmation is a normal outcome, not an error.
			if terr := s.transition(ctx, state, domain.StatusCancelled); terr == nil {
				slog.Info("command cancelled: confirmation declined", "command_id", state.cmd.ID)
			}
			return
		}
	}

	// Approved (explicitly or automatically). Mark the execution call as
	// issued before transitioning so a racing Cancel is refused.
	s.mu.Lock()
	if state.cmd.Status != domain.StatusPending {
		s.mu.Unlock()
		return
	}
	state.executionIssued = true
	s.mu.Unlock()

	if err := s.transition(ctx, state, domain.StatusConfirmed); err != nil {
		return
	}

	s.execute(ctx, state)
}

// execute invokes the execution collaborator exactly once and records the
// terminal outcome. Failures are captured in the FAILED status and surfaced
// via the status-changed event; they are never propagated as errors.
func (s *Service) execute(ctx context.Context, state *commandState) {
	result, err := s.executor.Execute(ctx, state.cmd.Clone())

	switch {
	case err != nil:
		slog.Warn("command execution failed", "command_id", state.cmd.ID, "err", err)
		s.transition(ctx, state, domain.StatusFailed)
	case result == nil || !result.Success:
		msg := ""
		if result != nil {
			msg = result.Message
		}
		slog.Warn("command execution rejected", "command_id", state.cmd.ID, "message", msg)
		s.transition(ctx, state, domain.StatusFailed)
	default:
		s.transition(ctx, state, domain.StatusExecuted)
	}
}

// cancelState transitions a pending command to CANCELLED and unblocks any
// parked confirmation wait.
func (s *Service) cancelState(ctx context.Context, state *commandState) {
	if err := s.transition(ctx, state, domain.StatusCancelled); err != nil {
		// Lost the race against settlement; nothing to do.
		return
	}
	state.cancelWait()
}

// transition applies a status change under the state-machine rules, persists
// the id-keyed replacement in the ledger and emits the status-changed event.
// Ledger write failures are logged, never propagated: there are no fatal
// errors at this layer.
func (s *Service) transition(ctx context.Context, state *commandState, next domain.CommandStatus) error {
	s.mu.Lock()
	old := state.cmd.Status
	if err := state.cmd.Transition(next, time.Now()); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.pendingID == state.cmd.ID && next != domain.StatusPending {
		s.pendingID = uuid.Nil
	}
	snap := state.cmd.Clone()
	s.mu.Unlock()

	if err := s.ledger.UpdateStatus(ctx, snap.ID, snap); err != nil {
		slog.Error("failed to persist status change",
			"command_id", snap.ID, "status", next, "err", err)
	}

	s.emit(ctx, Event{
		Kind:      EventStatusChanged,
		CommandID: snap.ID,
		OldStatus: old,
		NewStatus: next,
		Command:   snap,
		Timestamp: time.Now(),
	})
	return nil
}

// emit fans an event out to all subscribers.
func (s *Service) emit(ctx context.Context, evt Event) {
	s.mu.Lock()
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Notify(ctx, evt)
	}
}

// IsNoMatch reports whether err signals a non-trading utterance.
func IsNoMatch(err error) bool {
	return errors.Is(err, domain.ErrNoMatch)
}
