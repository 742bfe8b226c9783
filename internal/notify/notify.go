package notify

import (
	"time"

	"github.com/google/uuid"
)

// Event is the notification record emitted for every audit-logged governance
// action and every balance-affecting ledger operation. It is what external
// monitors reconcile against.
type Event struct {
	ID         string    `json:"id"`
	ActionType string    `json:"action_type"`
	Detail     string    `json:"detail"`
	Actor      string    `json:"actor"`
	AssetID    uint      `json:"asset_id,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewEvent builds an event with a fresh id and timestamp.
func NewEvent(actionType, detail, actor string) Event {
	return Event{
		ID:         uuid.NewString(),
		ActionType: actionType,
		Detail:     detail,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	}
}

// Notifier delivers events to an external observer channel.
type Notifier interface {
	Publish(event Event)
}

// Multi fans one event out to several sinks.
type Multi []Notifier

func (m Multi) Publish(event Event) {
	for _, n := range m {
		if n != nil {
			n.Publish(event)
		}
	}
}
