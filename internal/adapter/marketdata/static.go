// Package marketdata provides static market-data and portfolio collaborators
// seeded with fixed values. Hosts replace these with live feed adapters; the
// core only ever reads a snapshot at command-creation time.
package marketdata

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// StaticProvider serves snapshots from a fixed in-memory table.
type StaticProvider struct {
	mu        sync.RWMutex
	snapshots map[string]domain.MarketSnapshot
}

// NewStaticProvider creates a provider seeded with the given snapshots,
// keyed by canonical symbol.
func NewStaticProvider(snapshots map[string]domain.MarketSnapshot) *StaticProvider {
	table := make(map[string]domain.MarketSnapshot, len(snapshots))
	for symbol, snap := range snapshots {
		table[symbol] = snap
	}
	return &StaticProvider{snapshots: table}
}

// NewDemoProvider creates a provider seeded with a handful of liquid assets,
// enough to exercise every analysis path without a live feed.
func NewDemoProvider() *StaticProvider {
	return NewStaticProvider(map[string]domain.MarketSnapshot{
		"BTC": {
			Symbol:         "BTC",
			Price:          decimal.NewFromInt(97000),
			Change24h:      decimal.NewFromFloat(1.8),
			Volume24h:      decimal.NewFromInt(28_000_000_000),
			MarketCap:      decimal.NewFromInt(1_900_000_000_000),
			LiquidityScore: decimal.NewFromInt(98),
		},
		"ETH": {
			Symbol:         "ETH",
			Price:          decimal.NewFromInt(2700),
			Change24h:      decimal.NewFromFloat(-0.6),
			Volume24h:      decimal.NewFromInt(14_000_000_000),
			MarketCap:      decimal.NewFromInt(330_000_000_000),
			LiquidityScore: decimal.NewFromInt(95),
		},
		"SOL": {
			Symbol:         "SOL",
			Price:          decimal.NewFromInt(150),
			Change24h:      decimal.NewFromFloat(3.1),
			Volume24h:      decimal.NewFromInt(3_500_000_000),
			MarketCap:      decimal.NewFromInt(72_000_000_000),
			LiquidityScore: decimal.NewFromInt(90),
		},
		"DOGE": {
			Symbol:         "DOGE",
			Price:          decimal.NewFromFloat(0.22),
			Change24h:      decimal.NewFromFloat(5.4),
			Volume24h:      decimal.NewFromInt(1_200_000_000),
			MarketCap:      decimal.NewFromInt(32_000_000_000),
			LiquidityScore: decimal.NewFromInt(82),
		},
	})
}

// Set adds or replaces the snapshot for a symbol.
func (p *StaticProvider) Set(snapshot domain.MarketSnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots[snapshot.Symbol] = snapshot
}

// GetSnapshot returns the stored snapshot for the given canonical symbol.
func (p *StaticProvider) GetSnapshot(_ context.Context, symbol string) (*domain.MarketSnapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snap, ok := p.snapshots[symbol]
	if !ok {
		return nil, fmt.Errorf("no market data for symbol %s", symbol)
	}
	return &snap, nil
}

// StaticPortfolio serves a fixed trading context.
type StaticPortfolio struct {
	mu  sync.RWMutex
	ctx domain.TradingContext
}

// NewStaticPortfolio creates a portfolio provider returning the given context.
func NewStaticPortfolio(ctx domain.TradingContext) *StaticPortfolio {
	return &StaticPortfolio{ctx: ctx}
}

// NewDemoPortfolio creates a moderate-risk demo account with two open
// positions and conventional trading limits.
func NewDemoPortfolio() *StaticPortfolio {
	return NewStaticPortfolio(domain.TradingContext{
		PortfolioValue:   decimal.NewFromInt(50_000),
		AvailableBalance: decimal.NewFromInt(12_000),
		OpenPositions: []domain.OpenPosition{
			{Symbol: "BTC", Value: decimal.NewFromInt(25_000)},
			{Symbol: "ETH", Value: decimal.NewFromInt(8_000)},
		},
		RiskProfile: domain.RiskProfileModerate,
		TradingLimits: domain.TradingLimits{
			MaxTradeSize: decimal.NewFromInt(5_000),
			DailyLimit:   decimal.NewFromInt(20_000),
			RiskPerTrade: decimal.NewFromInt(2),
		},
	})
}

// Update replaces the stored trading context.
func (p *StaticPortfolio) Update(ctx domain.TradingContext) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ctx = ctx
}

// GetContext returns the current trading context.
func (p *StaticPortfolio) GetContext(_ context.Context) (*domain.TradingContext, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ctx := p.ctx
	ctx.OpenPositions = append([]domain.OpenPosition(nil), p.ctx.OpenPositions...)
	return &ctx, nil
}
