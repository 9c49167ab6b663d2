package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Action represents the trading action category recognized from user input.
// The declaration order is significant: it is the fixed priority order used
// by the grammar when an input could match more than one category.
type Action string

const (
	ActionBuy    Action = "BUY"
	ActionSell   Action = "SELL"
	ActionLimit  Action = "LIMIT"
	ActionStop   Action = "STOP"
	ActionStatus Action = "STATUS"
	ActionCancel Action = "CANCEL"
)

// ActionPriority is the fixed category order used for grammar matching.
// Earlier entries win when an input matches patterns from two categories.
var ActionPriority = []Action{
	ActionBuy,
	ActionSell,
	ActionLimit,
	ActionStop,
	ActionStatus,
	ActionCancel,
}

// Condition tags qualifying aspects of a parsed command (e.g. a stop loss).
type Condition string

const (
	ConditionConditional Condition = "CONDITIONAL"
	ConditionTrigger     Condition = "TRIGGER"
	ConditionStopLoss    Condition = "STOP_LOSS"
	ConditionLimitOrder  Condition = "LIMIT_ORDER"
)

// RiskLevel is the discrete risk classification of a command
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// CommandStatus represents the lifecycle state of a trade command
type CommandStatus string

const (
	StatusPending   CommandStatus = "PENDING"
	StatusConfirmed CommandStatus = "CONFIRMED"
	StatusExecuted  CommandStatus = "EXECUTED"
	StatusFailed    CommandStatus = "FAILED"
	StatusCancelled CommandStatus = "CANCELLED"
)

// IsTerminal reports whether the status admits no further transitions.
func (s CommandStatus) IsTerminal() bool {
	return s == StatusExecuted || s == StatusFailed || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
// Allowed transitions:
//
//	PENDING   -> CONFIRMED, CANCELLED
//	CONFIRMED -> EXECUTED, FAILED
//
// Terminal states (EXECUTED, FAILED, CANCELLED) never transition again.
func (s CommandStatus) CanTransitionTo(next CommandStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusExecuted || next == StatusFailed
	default:
		return false
	}
}

// ParsedIntent is the structured representation of a recognized trading
// instruction. Amount, Price and Percentage are optional: a pattern may
// legitimately capture none of them (e.g. a portfolio status request).
type ParsedIntent struct {
	Action     Action
	Asset      string // Canonical uppercase ticker (e.g. "BTC")
	Amount     *decimal.Decimal
	Price      *decimal.Decimal
	Percentage *decimal.Decimal // 0-100
	Conditions []Condition
}

// HasCondition reports whether the intent carries the given condition tag.
func (i *ParsedIntent) HasCondition(c Condition) bool {
	for _, cond := range i.Conditions {
		if cond == c {
			return true
		}
	}
	return false
}

// TradeCommand represents a fully analyzed trade command in the domain layer.
// All fields except Status and ExecutedAt are immutable after creation;
// Status is the only field driving the lifecycle.
type TradeCommand struct {
	ID           uuid.UUID
	OriginalText string // Verbatim user input, retained for audit/display
	Intent       ParsedIntent

	// Analysis annotations, computed once at creation from the market
	// snapshot and trading context captured at that moment.
	Confidence           int // 0-95
	EstimatedCost        decimal.Decimal
	MarketImpact         decimal.Decimal // Percent of 24h volume, capped at 5
	RiskLevel            RiskLevel
	ConfirmationRequired bool

	Status     CommandStatus
	CreatedAt  time.Time
	ExecutedAt *time.Time // Set only on transition to EXECUTED
}

// Validate ensures the command adheres to domain rules
// Returns an error if validation fails
func (c *TradeCommand) Validate() error {
	if c.ID == uuid.Nil {
		return errors.New("command ID cannot be nil")
	}
	if c.OriginalText == "" {
		return errors.New("command original text cannot be empty")
	}
	if c.Confidence < 0 || c.Confidence > 95 {
		return errors.New("confidence must be between 0 and 95")
	}
	if c.EstimatedCost.IsNegative() {
		return errors.New("estimated cost cannot be negative")
	}
	if c.MarketImpact.IsNegative() || c.MarketImpact.GreaterThan(decimal.NewFromInt(5)) {
		return errors.New("market impact must be between 0 and 5")
	}
	if c.Intent.Percentage != nil {
		if c.Intent.Percentage.IsNegative() || c.Intent.Percentage.GreaterThan(decimal.NewFromInt(100)) {
			return errors.New("percentage must be between 0 and 100")
		}
	}
	// Any sell always requires confirmation, regardless of cost or risk
	if c.Intent.Action == ActionSell && !c.ConfirmationRequired {
		return errors.New("sell commands must require confirmation")
	}
	return nil
}

// Clone returns a deep copy of the command. The lifecycle hands out clones
// so observers can never mutate ledger-owned state.
func (c *TradeCommand) Clone() *TradeCommand {
	clone := *c
	if c.ExecutedAt != nil {
		t := *c.ExecutedAt
		clone.ExecutedAt = &t
	}
	if c.Intent.Amount != nil {
		v := *c.Intent.Amount
		clone.Intent.Amount = &v
	}
	if c.Intent.Price != nil {
		v := *c.Intent.Price
		clone.Intent.Price = &v
	}
	if c.Intent.Percentage != nil {
		v := *c.Intent.Percentage
		clone.Intent.Percentage = &v
	}
	if c.Intent.Conditions != nil {
		clone.Intent.Conditions = append([]Condition(nil), c.Intent.Conditions...)
	}
	return &clone
}

// Transition mutates Status after checking the state machine rules.
// On a transition to EXECUTED, ExecutedAt is stamped with now.
func (c *TradeCommand) Transition(next CommandStatus, now time.Time) error {
	if !c.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	c.Status = next
	if next == StatusExecuted {
		t := now
		c.ExecutedAt = &t
	}
	return nil
}
