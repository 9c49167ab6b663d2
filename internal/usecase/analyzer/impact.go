package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// impactCap is the ceiling for reported market impact, in percent of 24h
// volume. Reporting saturates at this value; callers must not treat values
// near the cap as precise.
var impactCap = decimal.NewFromInt(5)

// EstimateImpact estimates the command's footprint relative to 24h trading
// volume: min(5, amount * price / volume24h * 100). Commands without a unit
// amount, or assets without volume data, report zero impact.
func EstimateImpact(intent *domain.ParsedIntent, snapshot *domain.MarketSnapshot) decimal.Decimal {
	if intent.Amount == nil || snapshot == nil {
		return decimal.Zero
	}
	if !snapshot.Volume24h.IsPositive() {
		return decimal.Zero
	}

	impact := intent.Amount.Mul(snapshot.Price).Div(snapshot.Volume24h).Mul(hundred)
	if impact.GreaterThan(impactCap) {
		return impactCap
	}
	if impact.IsNegative() {
		return decimal.Zero
	}
	return impact
}
