package grpc

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	tradedeskv1 "github.com/ruimtorres/tradedesk-backend/internal/adapter/grpc/tradedesk/v1"
	"github.com/ruimtorres/tradedesk-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// commandToProto maps a domain command to its wire representation.
// Decimals are serialized as strings; absent optionals become empty strings.
func commandToProto(cmd *domain.TradeCommand) *tradedeskv1.TradeCommand {
	pb := &tradedeskv1.TradeCommand{
		Id:                   cmd.ID.String(),
		OriginalText:         cmd.OriginalText,
		Action:               actionToProto(cmd.Intent.Action),
		Asset:                cmd.Intent.Asset,
		Amount:               decimalToString(cmd.Intent.Amount),
		Price:                decimalToString(cmd.Intent.Price),
		Percentage:           decimalToString(cmd.Intent.Percentage),
		Confidence:           int32(cmd.Confidence),
		EstimatedCost:        cmd.EstimatedCost.String(),
		MarketImpact:         cmd.MarketImpact.String(),
		RiskLevel:            riskLevelToProto(cmd.RiskLevel),
		ConfirmationRequired: cmd.ConfirmationRequired,
		Status:               statusToProto(cmd.Status),
		CreatedAt:            timestamppb.New(cmd.CreatedAt),
	}
	for _, c := range cmd.Intent.Conditions {
		pb.Conditions = append(pb.Conditions, conditionToProto(c))
	}
	if cmd.ExecutedAt != nil {
		pb.ExecutedAt = timestamppb.New(*cmd.ExecutedAt)
	}
	return pb
}

func decimalToString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func actionToProto(a domain.Action) tradedeskv1.Action {
	switch a {
	case domain.ActionBuy:
		return tradedeskv1.Action_ACTION_BUY
	case domain.ActionSell:
		return tradedeskv1.Action_ACTION_SELL
	case domain.ActionLimit:
		return tradedeskv1.Action_ACTION_LIMIT
	case domain.ActionStop:
		return tradedeskv1.Action_ACTION_STOP
	case domain.ActionStatus:
		return tradedeskv1.Action_ACTION_STATUS
	case domain.ActionCancel:
		return tradedeskv1.Action_ACTION_CANCEL
	default:
		return tradedeskv1.Action_ACTION_UNSPECIFIED
	}
}

func conditionToProto(c domain.Condition) tradedeskv1.Condition {
	switch c {
	case domain.ConditionConditional:
		return tradedeskv1.Condition_CONDITION_CONDITIONAL
	case domain.ConditionTrigger:
		return tradedeskv1.Condition_CONDITION_TRIGGER
	case domain.ConditionStopLoss:
		return tradedeskv1.Condition_CONDITION_STOP_LOSS
	case domain.ConditionLimitOrder:
		return tradedeskv1.Condition_CONDITION_LIMIT_ORDER
	default:
		return tradedeskv1.Condition_CONDITION_UNSPECIFIED
	}
}

func riskLevelToProto(r domain.RiskLevel) tradedeskv1.RiskLevel {
	switch r {
	case domain.RiskLevelLow:
		return tradedeskv1.RiskLevel_RISK_LEVEL_LOW
	case domain.RiskLevelMedium:
		return tradedeskv1.RiskLevel_RISK_LEVEL_MEDIUM
	case domain.RiskLevelHigh:
		return tradedeskv1.RiskLevel_RISK_LEVEL_HIGH
	default:
		return tradedeskv1.RiskLevel_RISK_LEVEL_UNSPECIFIED
	}
}

func statusToProto(s domain.CommandStatus) tradedeskv1.CommandStatus {
	switch s {
	case domain.StatusPending:
		return tradedeskv1.CommandStatus_COMMAND_STATUS_PENDING
	case domain.StatusConfirmed:
		return tradedeskv1.CommandStatus_COMMAND_STATUS_CONFIRMED
	case domain.StatusExecuted:
		return tradedeskv1.CommandStatus_COMMAND_STATUS_EXECUTED
	case domain.StatusFailed:
		return tradedeskv1.CommandStatus_COMMAND_STATUS_FAILED
	case domain.StatusCancelled:
		return tradedeskv1.CommandStatus_COMMAND_STATUS_CANCELLED
	default:
		return tradedeskv1.CommandStatus_COMMAND_STATUS_UNSPECIFIED
	}
}
