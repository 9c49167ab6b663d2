package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

var fifty = decimal.NewFromInt(50)

// ClassifyRisk accumulates independent boolean risk factors and maps their
// count to a discrete level. The counting semantics are deliberate: each
// factor contributes exactly one, with no partial weighting.
//
// Factors:
//   - estimated cost exceeds the account's max trade size
//   - percentage exceeds 50
//   - full liquidation (sell at exactly 100%)
//
// Two or more factors -> HIGH, exactly one -> MEDIUM, none -> LOW.
func ClassifyRisk(intent *domain.ParsedIntent, estimatedCost decimal.Decimal, tradingCtx *domain.TradingContext) domain.RiskLevel {
	factors := 0

	if estimatedCost.GreaterThan(tradingCtx.TradingLimits.MaxTradeSize) {
		factors++
	}
	if intent.Percentage != nil && intent.Percentage.GreaterThan(fifty) {
		factors++
	}
	if intent.Action == domain.ActionSell && intent.Percentage != nil && intent.Percentage.Equal(hundred) {
		factors++
	}

	switch {
	case factors >= 2:
		return domain.RiskLevelHigh
	case factors == 1:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}
