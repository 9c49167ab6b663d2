package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCommand() *TradeCommand {
	amount := decimal.NewFromFloat(0.1)
	return &TradeCommand{
		ID:           uuid.New(),
		OriginalText: "Buy 0.1 BTC at market price",
		Intent: ParsedIntent{
			Action: ActionBuy,
			Asset:  "BTC",
			Amount: &amount,
		},
		Confidence:    90,
		EstimatedCost: decimal.NewFromInt(9700),
		MarketImpact:  decimal.NewFromFloat(0.03),
		RiskLevel:     RiskLevelMedium,
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	}
}

func TestCommandStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    CommandStatus
		to      CommandStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusExecuted, false},
		{StatusPending, StatusFailed, false},
		{StatusConfirmed, StatusExecuted, true},
		{StatusConfirmed, StatusFailed, true},
		{StatusConfirmed, StatusCancelled, false},
		{StatusExecuted, StatusFailed, false},
		{StatusFailed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

// TestCommandStatus_TerminalIdempotence pins the property that a command
// reaching EXECUTED, FAILED or CANCELLED never transitions again.
func TestCommandStatus_TerminalIdempotence(t *testing.T) {
	terminals := []CommandStatus{StatusExecuted, StatusFailed, StatusCancelled}
	all := []CommandStatus{StatusPending, StatusConfirmed, StatusExecuted, StatusFailed, StatusCancelled}

	for _, from := range terminals {
		assert.True(t, from.IsTerminal())
		for _, to := range all {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s must be rejected", from, to)
		}
	}
}

func TestTradeCommand_TransitionStampsExecutedAt(t *testing.T) {
	cmd := validCommand()
	now := time.Now()

	require.NoError(t, cmd.Transition(StatusConfirmed, now))
	assert.Nil(t, cmd.ExecutedAt)

	require.NoError(t, cmd.Transition(StatusExecuted, now))
	require.NotNil(t, cmd.ExecutedAt)
	assert.Equal(t, now, *cmd.ExecutedAt)

	// Terminal: any further transition is rejected and leaves state intact.
	assert.ErrorIs(t, cmd.Transition(StatusFailed, now), ErrInvalidTransition)
	assert.Equal(t, StatusExecuted, cmd.Status)
}

func TestTradeCommand_Validate(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		assert.NoError(t, validCommand().Validate())
	})

	t.Run("confidence above cap", func(t *testing.T) {
		cmd := validCommand()
		cmd.Confidence = 100
		assert.Error(t, cmd.Validate())
	})

	t.Run("sell without confirmation", func(t *testing.T) {
		cmd := validCommand()
		cmd.Intent.Action = ActionSell
		cmd.ConfirmationRequired = false
		assert.Error(t, cmd.Validate())
	})

	t.Run("impact above cap", func(t *testing.T) {
		cmd := validCommand()
		cmd.MarketImpact = decimal.NewFromInt(6)
		assert.Error(t, cmd.Validate())
	})

	t.Run("percentage above 100", func(t *testing.T) {
		cmd := validCommand()
		pct := decimal.NewFromInt(150)
		cmd.Intent.Percentage = &pct
		assert.Error(t, cmd.Validate())
	})
}

func TestTradeCommand_CloneIsDeep(t *testing.T) {
	cmd := validCommand()
	cmd.Intent.Conditions = []Condition{ConditionStopLoss}

	clone := cmd.Clone()
	require.NotSame(t, cmd, clone)

	// Mutating the clone must not leak into the original.
	newAmount := decimal.NewFromInt(42)
	*clone.Intent.Amount = newAmount
	clone.Intent.Conditions[0] = ConditionTrigger

	assert.True(t, cmd.Intent.Amount.Equal(decimal.NewFromFloat(0.1)))
	assert.Equal(t, ConditionStopLoss, cmd.Intent.Conditions[0])
}

func TestTradingContext_PositionFor(t *testing.T) {
	ctx := &TradingContext{
		OpenPositions: []OpenPosition{
			{Symbol: "BTC", Value: decimal.NewFromInt(25000)},
			{Symbol: "ETH", Value: decimal.NewFromInt(8000)},
		},
	}

	pos := ctx.PositionFor("ETH")
	require.NotNil(t, pos)
	assert.True(t, pos.Value.Equal(decimal.NewFromInt(8000)))

	assert.Nil(t, ctx.PositionFor("SOL"))
}
