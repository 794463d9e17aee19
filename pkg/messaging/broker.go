package messaging

import "context"

// Broker publishes entity change events to downstream consumers.
type Broker interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Close() error
}
