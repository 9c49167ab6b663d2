package analyzer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func testContext() *domain.TradingContext {
	return &domain.TradingContext{
		PortfolioValue:   dec(50_000),
		AvailableBalance: dec(12_000),
		OpenPositions: []domain.OpenPosition{
			{Symbol: "ETH", Value: dec(8_000)},
		},
		RiskProfile: domain.RiskProfileModerate,
		TradingLimits: domain.TradingLimits{
			MaxTradeSize: dec(5_000),
			DailyLimit:   dec(20_000),
			RiskPerTrade: dec(2),
		},
	}
}

func btcSnapshot() *domain.MarketSnapshot {
	return &domain.MarketSnapshot{
		Symbol:         "BTC",
		Price:          dec(97_000),
		Volume24h:      dec(28_000_000_000),
		LiquidityScore: dec(98),
	}
}

func TestEstimateCost(t *testing.T) {
	ctx := testContext()
	snap := btcSnapshot()

	tests := []struct {
		name   string
		intent domain.ParsedIntent
		want   decimal.Decimal
	}{
		{
			name:   "buy with amount uses spot price",
			intent: domain.ParsedIntent{Action: domain.ActionBuy, Asset: "BTC", Amount: decPtr(0.1)},
			want:   dec(9_700),
		},
		{
			name:   "buy with amount prefers explicit price",
			intent: domain.ParsedIntent{Action: domain.ActionBuy, Asset: "BTC", Amount: decPtr(0.1), Price: decPtr(90_000)},
			want:   dec(9_000),
		},
		{
			name:   "buy with percentage draws on available balance",
			intent: domain.ParsedIntent{Action: domain.ActionBuy, Asset: "BTC", Percentage: decPtr(25)},
			want:   dec(3_000),
		},
		{
			name:   "sell with percentage draws on position value",
			intent: domain.ParsedIntent{Action: domain.ActionSell, Asset: "ETH", Percentage: decPtr(50)},
			want:   dec(4_000),
		},
		{
			name:   "sell percentage without open position degrades to zero",
			intent: domain.ParsedIntent{Action: domain.ActionSell, Asset: "SOL", Percentage: decPtr(50)},
			want:   decimal.Zero,
		},
		{
			name:   "sell with amount uses spot price",
			intent: domain.ParsedIntent{Action: domain.ActionSell, Asset: "BTC", Amount: decPtr(0.2)},
			want:   dec(19_400),
		},
		{
			name:   "no amount and no percentage costs nothing",
			intent: domain.ParsedIntent{Action: domain.ActionBuy, Asset: "BTC"},
			want:   decimal.Zero,
		},
		{
			name:   "status request costs nothing",
			intent: domain.ParsedIntent{Action: domain.ActionStatus},
			want:   decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCost(&tt.intent, ctx, snap)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestEstimateImpact(t *testing.T) {
	t.Run("proportional to volume share", func(t *testing.T) {
		// 10 BTC * 97,000 / 28B * 100 ~= 0.0034%
		intent := domain.ParsedIntent{Action: domain.ActionBuy, Asset: "BTC", Amount: decPtr(10)}
		got := EstimateImpact(&intent, btcSnapshot())
		assert.True(t, got.IsPositive())
		assert.True(t, got.LessThan(dec(1)))
	})

	t.Run("caps at five percent", func(t *testing.T) {
		thin := &domain.MarketSnapshot{Symbol: "XYZ", Price: dec(100), Volume24h: dec(1_000)}
		intent := domain.ParsedIntent{Action: domain.ActionBuy, Asset: "XYZ", Amount: decPtr(500)}
		got := EstimateImpact(&intent, thin)
		assert.True(t, got.Equal(dec(5)), "got %s", got)
	})

	t.Run("no amount reports zero", func(t *testing.T) {
		intent := domain.ParsedIntent{Action: domain.ActionStatus}
		assert.True(t, EstimateImpact(&intent, btcSnapshot()).IsZero())
	})

	t.Run("missing volume reports zero", func(t *testing.T) {
		snap := &domain.MarketSnapshot{Symbol: "XYZ", Price: dec(100)}
		intent := domain.ParsedIntent{Action: domain.ActionBuy, Asset: "XYZ", Amount: decPtr(1)}
		assert.True(t, EstimateImpact(&intent, snap).IsZero())
	})
}

func TestClassifyRisk_DiscreteCounting(t *testing.T) {
	ctx := testContext() // MaxTradeSize = 5,000

	tests := []struct {
		name   string
		intent domain.ParsedIntent
		cost   decimal.Decimal
		want   domain.RiskLevel
	}{
		{
			name:   "no factors",
			intent: domain.ParsedIntent{Action: domain.ActionBuy, Percentage: decPtr(20)},
			cost:   dec(1_000),
			want:   domain.RiskLevelLow,
		},
		{
			name:   "cost factor only",
			intent: domain.ParsedIntent{Action: domain.ActionBuy, Amount: decPtr(1)},
			cost:   dec(9_700),
			want:   domain.RiskLevelMedium,
		},
		{
			name:   "percentage factor only",
			intent: domain.ParsedIntent{Action: domain.ActionBuy, Percentage: decPtr(80)},
			cost:   dec(1_000),
			want:   domain.RiskLevelMedium,
		},
		{
			name:   "cost and percentage factors",
			intent: domain.ParsedIntent{Action: domain.ActionBuy, Percentage: decPtr(80)},
			cost:   dec(9_600),
			want:   domain.RiskLevelHigh,
		},
		{
			name:   "full liquidation counts two factors",
			intent: domain.ParsedIntent{Action: domain.ActionSell, Asset: "ETH", Percentage: decPtr(100)},
			cost:   dec(1_000),
			want:   domain.RiskLevelHigh,
		},
		{
			name:   "half liquidation is a single factor at most",
			intent: domain.ParsedIntent{Action: domain.ActionSell, Asset: "ETH", Percentage: decPtr(50)},
			cost:   dec(1_000),
			want:   domain.RiskLevelLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRisk(&tt.intent, tt.cost, ctx))
		})
	}
}

func TestRequiresConfirmation(t *testing.T) {
	tests := []struct {
		name   string
		intent domain.ParsedIntent
		cost   decimal.Decimal
		risk   domain.RiskLevel
		want   bool
	}{
		{
			name:   "small low-risk buy",
			intent: domain.ParsedIntent{Action: domain.ActionBuy},
			cost:   dec(500),
			risk:   domain.RiskLevelLow,
			want:   false,
		},
		{
			name:   "expensive buy",
			intent: domain.ParsedIntent{Action: domain.ActionBuy},
			cost:   dec(1_001),
			risk:   domain.RiskLevelLow,
			want:   true,
		},
		{
			name:   "high-risk buy",
			intent: domain.ParsedIntent{Action: domain.ActionBuy},
			cost:   dec(10),
			risk:   domain.RiskLevelHigh,
			want:   true,
		},
		{
			// The sell rule is unconditional: size and risk are irrelevant.
			name:   "tiny low-risk sell",
			intent: domain.ParsedIntent{Action: domain.ActionSell},
			cost:   decimal.Zero,
			risk:   domain.RiskLevelLow,
			want:   true,
		},
		{
			name:   "status request",
			intent: domain.ParsedIntent{Action: domain.ActionStatus},
			cost:   decimal.Zero,
			risk:   domain.RiskLevelLow,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiresConfirmation(&tt.intent, tt.cost, tt.risk))
		})
	}
}

// TestAnnotate_HighRiskBuyRequiresConfirmation covers the combined pipeline:
// two risk factors (percentage 80 and cost above the max trade size) must
// classify HIGH and force confirmation even for a buy.
func TestAnnotate_HighRiskBuyRequiresConfirmation(t *testing.T) {
	ctx := testContext() // AvailableBalance = 12,000; MaxTradeSize = 5,000
	intent := domain.ParsedIntent{Action: domain.ActionBuy, Asset: "BTC", Percentage: decPtr(80)}

	ann := Annotate(&intent, ctx, btcSnapshot())

	// 80% of 12,000 = 9,600 > 5,000: cost factor + percentage factor.
	assert.True(t, ann.EstimatedCost.Equal(dec(9_600)))
	assert.Equal(t, domain.RiskLevelHigh, ann.RiskLevel)
	assert.True(t, ann.ConfirmationRequired)
}
