package interpreter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ruimtorres/tradedesk-backend/internal/adapter/repository/memory"
	"github.com/ruimtorres/tradedesk-backend/internal/domain"
	"github.com/ruimtorres/tradedesk-backend/internal/usecase/parser"
)

// stubMarket serves a fixed snapshot for every asset.
type stubMarket struct{}

func (stubMarket) GetSnapshot(_ context.Context, symbol string) (*domain.MarketSnapshot, error) {
	return &domain.MarketSnapshot{
		Symbol:         symbol,
		Price:          decimal.NewFromInt(97_000),
		Volume24h:      decimal.NewFromInt(28_000_000_000),
		LiquidityScore: decimal.NewFromInt(98),
	}, nil
}

// stubPortfolio serves a fixed trading context.
type stubPortfolio struct{}

func (stubPortfolio) GetContext(_ context.Context) (*domain.TradingContext, error) {
	return &domain.TradingContext{
		PortfolioValue:   decimal.NewFromInt(50_000),
		AvailableBalance: decimal.NewFromInt(12_000),
		OpenPositions: []domain.OpenPosition{
			{Symbol: "ETH", Value: decimal.NewFromInt(8_000)},
		},
		RiskProfile: domain.RiskProfileModerate,
		TradingLimits: domain.TradingLimits{
			MaxTradeSize: decimal.NewFromInt(5_000),
			DailyLimit:   decimal.NewFromInt(20_000),
			RiskPerTrade: decimal.NewFromInt(2),
		},
	}, nil
}

// MockExecutor is a mock implementation of Executor for testing
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(ctx context.Context, cmd *domain.TradeCommand) (*ExecutionResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ExecutionResult), args.Error(1)
}

// blockingExecutor parks Execute until released, so tests can observe the
// window between execution issue and settlement.
type blockingExecutor struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingExecutor() *blockingExecutor {
	return &blockingExecutor{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (e *blockingExecutor) Execute(_ context.Context, _ *domain.TradeCommand) (*ExecutionResult, error) {
	close(e.started)
	<-e.release
	return &ExecutionResult{Success: true, OrderID: "SIM-000001"}, nil
}

func newTestService(confirmer Confirmer, executor Executor, ttl time.Duration) (*Service, domain.CommandRepository) {
	repo := memory.NewCommandRepository(-1)
	svc := NewService(parser.New(), stubMarket{}, stubPortfolio{}, confirmer, executor, repo, ttl)
	return svc, repo
}

func TestInterpret_NonTradingUtterance(t *testing.T) {
	svc, _ := newTestService(NewDecisionGate(), &MockExecutor{}, 0)

	cmd, err := svc.Interpret(context.Background(), "What's the weather like today")
	assert.ErrorIs(t, err, domain.ErrNoMatch)
	assert.True(t, IsNoMatch(err))
	assert.Nil(t, cmd)
}

func TestInterpret_SmallBuyAutoExecutes(t *testing.T) {
	executor := &MockExecutor{}
	executor.On("Execute", mock.Anything, mock.Anything).
		Return(&ExecutionResult{Success: true, OrderID: "SIM-000001"}, nil)

	svc, _ := newTestService(NewDecisionGate(), executor, 0)

	// 0.001 BTC at 97,000 costs 97: below the confirmation threshold and low risk.
	cmd, err := svc.Interpret(context.Background(), "Buy 0.001 BTC at market price")
	require.NoError(t, err)
	assert.False(t, cmd.ConfirmationRequired)
	assert.Equal(t, domain.StatusPending, cmd.Status)

	svc.Wait()

	stored, err := svc.Get(context.Background(), cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExecuted, stored.Status)
	assert.NotNil(t, stored.ExecutedAt)
	executor.AssertNumberOfCalls(t, "Execute", 1)
}

func TestInterpret_ApprovedConfirmationExecutes(t *testing.T) {
	gate := NewDecisionGate()
	executor := &MockExecutor{}
	executor.On("Execute", mock.Anything, mock.Anything).
		Return(&ExecutionResult{Success: true, OrderID: "SIM-000002"}, nil)

	svc, _ := newTestService(gate, executor, 0)

	cmd, err := svc.Interpret(context.Background(), "Sell 50% of my ETH holdings")
	require.NoError(t, err)
	assert.True(t, cmd.ConfirmationRequired, "sells always require confirmation")

	// The decision slot is registered before Interpret returns.
	assert.Len(t, gate.Pending(), 1)

	require.NoError(t, gate.Resolve(cmd.ID, true))
	svc.Wait()

	stored, err := svc.Get(context.Background(), cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExecuted, stored.Status)
}

func TestInterpret_DeclinedConfirmationCancels(t *testing.T) {
	gate := NewDecisionGate()
	executor := &MockExecutor{}
	svc, _ := newTestService(gate, executor, 0)

	cmd, err := svc.Interpret(context.Background(), "Sell 50% of my ETH holdings")
	require.NoError(t, err)

	require.NoError(t, gate.Resolve(cmd.ID, false))
	svc.Wait()

	stored, err := svc.Get(context.Background(), cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	executor.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestInterpret_ConfirmationWaitExpires(t *testing.T) {
	gate := NewDecisionGate()
	executor := &MockExecutor{}
	svc, _ := newTestService(gate, executor, 20*time.Millisecond)

	cmd, err := svc.Interpret(context.Background(), "Sell 50% of my ETH holdings")
	require.NoError(t, err)

	// Never resolve; the wait must expire into CANCELLED.
	svc.Wait()

	stored, err := svc.Get(context.Background(), cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	executor.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCancel_PendingCommand(t *testing.T) {
	gate := NewDecisionGate()
	executor := &MockExecutor{}
	svc, _ := newTestService(gate, executor, 0)

	cmd, err := svc.Interpret(context.Background(), "Sell 50% of my ETH holdings")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), cmd.ID))
	svc.Wait()

	stored, err := svc.Get(context.Background(), cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	executor.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCancel_UnknownCommand(t *testing.T) {
	svc, _ := newTestService(NewDecisionGate(), &MockExecutor{}, 0)

	err := svc.Cancel(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrCommandNotFound)
}

func TestCancel_AfterExecutionIssuedIsTooLate(t *testing.T) {
	executor := newBlockingExecutor()
	svc, _ := newTestService(NewDecisionGate(), executor, 0)

	cmd, err := svc.Interpret(context.Background(), "Buy 0.001 BTC at market price")
	require.NoError(t, err)

	// Wait for the execution call to be in flight, then try to cancel.
	select {
	case <-executor.started:
	case <-time.After(time.Second):
		t.Fatal("execution never started")
	}

	assert.ErrorIs(t, svc.Cancel(context.Background(), cmd.ID), domain.ErrCancelTooLate)

	close(executor.release)
	svc.Wait()

	stored, err := svc.Get(context.Background(), cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExecuted, stored.Status)
}

func TestCancel_SettledCommandIsInvalidTransition(t *testing.T) {
	executor := &MockExecutor{}
	executor.On("Execute", mock.Anything, mock.Anything).
		Return(&ExecutionResult{Success: true}, nil)

	svc, _ := newTestService(NewDecisionGate(), executor, 0)

	cmd, err := svc.Interpret(context.Background(), "Buy 0.001 BTC at market price")
	require.NoError(t, err)
	svc.Wait()

	assert.ErrorIs(t, svc.Cancel(context.Background(), cmd.ID), domain.ErrInvalidTransition)
}

func TestInterpret_ExecutionErrorSettlesFailed(t *testing.T) {
	executor := &MockExecutor{}
	executor.On("Execute", mock.Anything, mock.Anything).
		Return(nil, errors.New("venue unreachable"))

	svc, _ := newTestService(NewDecisionGate(), executor, 0)

	cmd, err := svc.Interpret(context.Background(), "Buy 0.001 BTC at market price")
	require.NoError(t, err)
	svc.Wait()

	stored, err := svc.Get(context.Background(), cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, stored.Status)
}

func TestInterpret_ExecutionRejectionSettlesFailed(t *testing.T) {
	executor := &MockExecutor{}
	executor.On("Execute", mock.Anything, mock.Anything).
		Return(&ExecutionResult{Success: false, Message: "insufficient margin"}, nil)

	svc, _ := newTestService(NewDecisionGate(), executor, 0)

	cmd, err := svc.Interpret(context.Background(), "Buy 0.001 BTC at market price")
	require.NoError(t, err)
	svc.Wait()

	stored, err := svc.Get(context.Background(), cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, stored.Status)
}

// TestInterpret_NewPendingSupersedesPrior pins the single-pending-slot rule:
// issuing a second confirmation-required command cancels the first.
func TestInterpret_NewPendingSupersedesPrior(t *testing.T) {
	gate := NewDecisionGate()
	executor := &MockExecutor{}
	svc, _ := newTestService(gate, executor, 0)

	first, err := svc.Interpret(context.Background(), "Sell 50% of my ETH holdings")
	require.NoError(t, err)

	second, err := svc.Interpret(context.Background(), "Sell 25% of my ETH holdings")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		stored, gerr := svc.Get(context.Background(), first.ID)
		return gerr == nil && stored.Status == domain.StatusCancelled
	}, time.Second, 5*time.Millisecond, "superseded command never cancelled")

	pending := svc.PendingCommand()
	require.NotNil(t, pending)
	assert.Equal(t, second.ID, pending.ID)

	require.NoError(t, gate.Resolve(second.ID, false))
	svc.Wait()
}

// TestInterpret_DecisionBeforeWaitParks pins the eager-registration contract:
// a decision delivered immediately after Interpret returns, possibly before
// the settle goroutine has parked on the gate, must be honored rather than
// rejected.
func TestInterpret_DecisionBeforeWaitParks(t *testing.T) {
	gate := NewDecisionGate()
	executor := &MockExecutor{}
	executor.On("Execute", mock.Anything, mock.Anything).
		Return(&ExecutionResult{Success: true, OrderID: "SIM-000003"}, nil)

	svc, _ := newTestService(gate, executor, 0)

	cmd, err := svc.Interpret(context.Background(), "Sell 50% of my ETH holdings")
	require.NoError(t, err)

	// No yield between Interpret and Resolve: the buffered decision slot
	// must already exist.
	require.NoError(t, gate.Resolve(cmd.ID, true))
	svc.Wait()

	stored, err := svc.Get(context.Background(), cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExecuted, stored.Status)
}

// TestCancel_ConcurrentWithSettlement churns command creation against
// immediate cancellation. The settle goroutine snapshots the command while
// Cancel transitions it; this test exists to fail under the race detector
// if either side ever touches shared state without the lifecycle mutex.
func TestCancel_ConcurrentWithSettlement(t *testing.T) {
	gate := NewDecisionGate()
	executor := &MockExecutor{}
	executor.On("Execute", mock.Anything, mock.Anything).
		Return(&ExecutionResult{Success: true}, nil).Maybe()

	svc, _ := newTestService(gate, executor, 50*time.Millisecond)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		cmd, err := svc.Interpret(ctx, "Sell 50% of my ETH holdings")
		require.NoError(t, err)

		wg.Add(1)
		go func() {
			defer wg.Done()
			// Outcome is timing-dependent (cancelled, superseded or too
			// late); only memory safety is under test here.
			svc.Cancel(ctx, cmd.ID)
		}()
	}

	wg.Wait()
	svc.Wait()

	history, err := svc.History(ctx, 200)
	require.NoError(t, err)
	for _, cmd := range history {
		assert.True(t, cmd.Status.IsTerminal(), "command %s left non-terminal as %s", cmd.ID, cmd.Status)
	}
}

func TestSubscribe_LifecycleEventsEmitted(t *testing.T) {
	executor := &MockExecutor{}
	executor.On("Execute", mock.Anything, mock.Anything).
		Return(&ExecutionResult{Success: true}, nil)

	svc, _ := newTestService(NewDecisionGate(), executor, 0)

	var mu sync.Mutex
	var events []Event
	svc.Subscribe(SubscriberFunc(func(_ context.Context, evt Event) {
		mu.Lock()
		events = append(events, evt)
		mu.Unlock()
	}))

	cmd, err := svc.Interpret(context.Background(), "Buy 0.001 BTC at market price")
	require.NoError(t, err)
	svc.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 3)
	assert.Equal(t, EventCommandCreated, events[0].Kind)
	assert.Equal(t, domain.StatusPending, events[0].NewStatus)
	assert.Equal(t, EventStatusChanged, events[1].Kind)
	assert.Equal(t, domain.StatusConfirmed, events[1].NewStatus)
	assert.Equal(t, EventStatusChanged, events[2].Kind)
	assert.Equal(t, domain.StatusExecuted, events[2].NewStatus)
	for _, evt := range events {
		assert.Equal(t, cmd.ID, evt.CommandID)
		require.NotNil(t, evt.Command)
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	executor := &MockExecutor{}
	executor.On("Execute", mock.Anything, mock.Anything).
		Return(&ExecutionResult{Success: true}, nil)

	svc, _ := newTestService(NewDecisionGate(), executor, 0)

	first, err := svc.Interpret(context.Background(), "Buy 0.001 BTC at market price")
	require.NoError(t, err)
	second, err := svc.Interpret(context.Background(), "Buy 0.002 BTC at market price")
	require.NoError(t, err)
	svc.Wait()

	history, err := svc.History(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}
