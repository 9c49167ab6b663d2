package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// EstimateCost computes the estimated notional cost of an intent given the
// trading context and market snapshot captured at creation time.
// Pure function of its inputs; no side effects.
//
// Rules:
//   - Buy + percentage: percentage/100 * available balance
//   - Buy/Sell + amount: amount * (target price, falling back to spot price)
//   - Sell + percentage: percentage/100 * matching open position value;
//     0 when no such position exists (callers may want to warn)
//   - Everything else (no amount, no percentage): 0
func EstimateCost(intent *domain.ParsedIntent, tradingCtx *domain.TradingContext, snapshot *domain.MarketSnapshot) decimal.Decimal {
	switch intent.Action {
	case domain.ActionBuy:
		if intent.Percentage != nil {
			return intent.Percentage.Div(hundred).Mul(tradingCtx.AvailableBalance)
		}
		if intent.Amount != nil {
			return intent.Amount.Mul(effectivePrice(intent, snapshot))
		}
	case domain.ActionSell:
		if intent.Percentage != nil {
			position := tradingCtx.PositionFor(intent.Asset)
			if position == nil {
				return decimal.Zero
			}
			return intent.Percentage.Div(hundred).Mul(position.Value)
		}
		if intent.Amount != nil {
			return intent.Amount.Mul(effectivePrice(intent, snapshot))
		}
	}
	return decimal.Zero
}

// effectivePrice returns the intent's explicit target price when present,
// otherwise the snapshot's spot price. A nil snapshot yields zero.
func effectivePrice(intent *domain.ParsedIntent, snapshot *domain.MarketSnapshot) decimal.Decimal {
	if intent.Price != nil {
		return *intent.Price
	}
	if snapshot == nil {
		return decimal.Zero
	}
	return snapshot.Price
}
