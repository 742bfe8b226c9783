package notify

import (
	"assetledger/pkg/config"

	log "github.com/sirupsen/logrus"
)

// EventQueue is the durable rabbitmq queue carrying ledger events.
const EventQueue = "ledger_events"

// QueueNotifier publishes events to the ledger_events rabbitmq queue.
type QueueNotifier struct {
	publisher *config.Publisher
}

// NewQueueNotifier opens a channel on the shared rabbitmq connection.
// Returns an error if rabbitmq has not been initialized.
func NewQueueNotifier() (*QueueNotifier, error) {
	pub, err := config.NewPublisher()
	if err != nil {
		return nil, err
	}
	return &QueueNotifier{publisher: pub}, nil
}

// Publish sends the event to the queue. Delivery failures are logged, not
// propagated: the ledger state change has already committed and must not be
// rolled back because a monitor is unreachable.
func (q *QueueNotifier) Publish(event Event) {
	if err := q.publisher.Publish(EventQueue, event); err != nil {
		log.Errorf("Failed to publish ledger event %s: %v", event.ID, err)
	}
}

// Close releases the underlying channel.
func (q *QueueNotifier) Close() error {
	return q.publisher.Close()
}
