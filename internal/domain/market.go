package domain

import (
	"github.com/shopspring/decimal"
)

// MarketSnapshot is a point-in-time read of market data for a single asset,
// supplied by the market-data collaborator. It is captured once at command
// creation and never re-fetched mid-lifecycle.
type MarketSnapshot struct {
	Symbol         string
	Price          decimal.Decimal
	Change24h      decimal.Decimal // Percent change over the last 24h
	Volume24h      decimal.Decimal // Quote-denominated 24h trading volume
	MarketCap      decimal.Decimal
	LiquidityScore decimal.Decimal // 0-100
}

// RiskProfile represents the user's configured risk appetite
type RiskProfile string

const (
	RiskProfileConservative RiskProfile = "CONSERVATIVE"
	RiskProfileModerate     RiskProfile = "MODERATE"
	RiskProfileAggressive   RiskProfile = "AGGRESSIVE"
)

// OpenPosition is a currently held position as reported by the portfolio
// collaborator. Value is the position's current quote-denominated worth.
type OpenPosition struct {
	Symbol string
	Value  decimal.Decimal
}

// TradingLimits are the account-level guard rails used by risk classification.
type TradingLimits struct {
	MaxTradeSize decimal.Decimal
	DailyLimit   decimal.Decimal
	RiskPerTrade decimal.Decimal
}

// TradingContext is the read-only account state supplied by the portfolio
// collaborator at command-creation time.
type TradingContext struct {
	PortfolioValue   decimal.Decimal
	AvailableBalance decimal.Decimal
	OpenPositions    []OpenPosition
	RiskProfile      RiskProfile
	TradingLimits    TradingLimits
}

// PositionFor returns the open position for the given canonical symbol,
// or nil when no such position exists.
func (c *TradingContext) PositionFor(symbol string) *OpenPosition {
	for i := range c.OpenPositions {
		if c.OpenPositions[i].Symbol == symbol {
			return &c.OpenPositions[i]
		}
	}
	return nil
}
