// Package analyzer annotates a parsed trading intent with cost, market
// impact, risk and confirmation-policy decisions. All functions are pure:
// they read the trading context and market snapshot captured at
// command-creation time and never re-fetch data.
package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// Annotations bundles the analysis results attached to a command at creation.
type Annotations struct {
	EstimatedCost        decimal.Decimal
	MarketImpact         decimal.Decimal
	RiskLevel            domain.RiskLevel
	ConfirmationRequired bool
}

// Annotate runs the full analysis pipeline over a parsed intent:
// cost estimation, market-impact estimation, risk classification and the
// confirmation-policy decision, in that order (risk depends on cost, the
// policy depends on both).
func Annotate(intent *domain.ParsedIntent, tradingCtx *domain.TradingContext, snapshot *domain.MarketSnapshot) Annotations {
	cost := EstimateCost(intent, tradingCtx, snapshot)
	impact := EstimateImpact(intent, snapshot)
	risk := ClassifyRisk(intent, cost, tradingCtx)

	return Annotations{
		EstimatedCost:        cost,
		MarketImpact:         impact,
		RiskLevel:            risk,
		ConfirmationRequired: RequiresConfirmation(intent, cost, risk),
	}
}
