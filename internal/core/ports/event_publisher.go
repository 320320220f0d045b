package ports

import (
	"context"
)

// EventPublisher publishes integration events to the message broker so other
// services can react to changes in the rental fleet.
type EventPublisher interface {
	// Publish sends an event of the given type. The payload is serialized by
	// the adapter; publishing blocks until the broker acknowledges.
	Publish(ctx context.Context, eventType string, payload any) error
}
