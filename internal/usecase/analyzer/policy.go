package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// confirmationCostThreshold is the estimated cost above which a command
// always requires explicit user confirmation.
var confirmationCostThreshold = decimal.NewFromInt(1000)

// RequiresConfirmation decides whether a command needs an explicit user
// decision before execution:
//
//	cost > 1000 OR risk == HIGH OR action == SELL
//
// The sell rule is a non-negotiable safety rule: any sell requires
// confirmation regardless of size or risk.
func RequiresConfirmation(intent *domain.ParsedIntent, estimatedCost decimal.Decimal, riskLevel domain.RiskLevel) bool {
	if intent.Action == domain.ActionSell {
		return true
	}
	if riskLevel == domain.RiskLevelHigh {
		return true
	}
	return estimatedCost.GreaterThan(confirmationCostThreshold)
}
