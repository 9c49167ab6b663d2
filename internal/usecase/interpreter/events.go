package interpreter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// EventKind is a machine-readable lifecycle event category.
type EventKind string

const (
	EventCommandCreated EventKind = "command.created"
	EventStatusChanged  EventKind = "command.status_changed"
)

// Event carries the data emitted to observers (UI, loggers, websocket hub)
// on command creation and on every status transition.
type Event struct {
	Kind      EventKind
	CommandID uuid.UUID
	// OldStatus and NewStatus are set for status-changed events only.
	OldStatus domain.CommandStatus
	NewStatus domain.CommandStatus
	// Command is a snapshot of the command at emission time.
	Command   *domain.TradeCommand
	Timestamp time.Time
}

// Subscriber receives lifecycle events. Implementations MUST NOT block the
// caller for longer than a short timeout; delivery failures should be
// logged by the subscriber, never propagated into the lifecycle.
type Subscriber interface {
	Notify(ctx context.Context, evt Event)
}

// SubscriberFunc adapts a plain function to the Subscriber interface.
type SubscriberFunc func(ctx context.Context, evt Event)

// Notify implements Subscriber.
func (f SubscriberFunc) Notify(ctx context.Context, evt Event) {
	f(ctx, evt)
}
