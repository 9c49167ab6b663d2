package domain

import (
	"context"

	"github.com/google/uuid"
)

// CommandRepository defines the interface for the trade-command ledger.
// The ledger is append-only: entries are created once and afterwards only
// their status (and executed-at stamp) is replaced by ID. Entries are never
// removed except by a repository's own truncation policy.
type CommandRepository interface {
	// Create appends a new command to the ledger
	Create(ctx context.Context, cmd *TradeCommand) error

	// UpdateStatus replaces the status (and executed-at stamp) of the
	// command with the given ID. Returns ErrCommandNotFound if absent.
	UpdateStatus(ctx context.Context, id uuid.UUID, cmd *TradeCommand) error

	// GetByID retrieves a command by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*TradeCommand, error)

	// ListRecent retrieves the most recent commands, newest first,
	// limited to at most limit entries
	ListRecent(ctx context.Context, limit int) ([]*TradeCommand, error)
}

// MarketDataProvider supplies point-in-time market snapshots.
// Implementations are external collaborators (exchange feed, cache, ...);
// this core only reads from them at command-creation time.
type MarketDataProvider interface {
	// GetSnapshot returns current market data for the given canonical symbol
	GetSnapshot(ctx context.Context, symbol string) (*MarketSnapshot, error)
}

// PortfolioProvider supplies the read-only account state used for cost and
// risk analysis.
type PortfolioProvider interface {
	// GetContext returns the current trading context for the account
	GetContext(ctx context.Context) (*TradingContext, error)
}
