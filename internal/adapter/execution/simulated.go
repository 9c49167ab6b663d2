// Package execution provides a simulated execution collaborator. The core
// never performs real order routing, custody or on-chain submission; hosts
// plug in their own Executor for settlement and use this one for demos and
// tests.
package execution

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
	"github.com/ruimtorres/tradedesk-backend/internal/usecase/interpreter"
)

// SimulatedExecutor acknowledges every execution request with a paper fill.
// FailEvery injects a deterministic failure on every Nth call, which keeps
// the FAILED path reachable in demos.
type SimulatedExecutor struct {
	// FailEvery injects a failure on every Nth execution; 0 disables injection.
	FailEvery int

	mu    sync.Mutex
	calls int
}

// NewSimulatedExecutor creates a new SimulatedExecutor instance
func NewSimulatedExecutor(failEvery int) *SimulatedExecutor {
	return &SimulatedExecutor{FailEvery: failEvery}
}

// Execute reports a simulated fill for the command.
func (e *SimulatedExecutor) Execute(ctx context.Context, cmd *domain.TradeCommand) (*interpreter.ExecutionResult, error) {
	e.mu.Lock()
	e.calls++
	n := e.calls
	e.mu.Unlock()

	if e.FailEvery > 0 && n%e.FailEvery == 0 {
		return &interpreter.ExecutionResult{
			Success: false,
			Message: "simulated venue rejection",
		}, nil
	}

	orderID := fmt.Sprintf("SIM-%06d", n)
	slog.Info("simulated execution",
		"order_id", orderID,
		"command_id", cmd.ID,
		"action", cmd.Intent.Action,
		"asset", cmd.Intent.Asset,
	)

	return &interpreter.ExecutionResult{
		Success: true,
		OrderID: orderID,
		Message: "simulated fill",
	}, nil
}
