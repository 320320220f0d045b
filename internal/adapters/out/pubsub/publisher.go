// Package pubsub implements event publishing on Google Cloud Pub/Sub.
// Registration events are serialized as JSON and published with the event
// type carried as a message attribute, so consumers can filter without
// decoding payloads.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
)

const publishTimeout = 15 * time.Second

// Publisher publishes domain events to a single Pub/Sub topic.
type Publisher struct {
	publisher *gcppubsub.Publisher
}

// NewPublisher creates a publisher bound to the given topic.
func NewPublisher(client *gcppubsub.Client, topic string) *Publisher {
	return &Publisher{publisher: client.Publisher(topic)}
}

// Publish serializes payload as JSON and publishes it. The call blocks until
// the broker acknowledges the message or the publish timeout elapses, so a
// broker outage surfaces as an error to the caller.
func (p *Publisher) Publish(ctx context.Context, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s event: %w", eventType, err)
	}

	msg := &gcppubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event_type":   eventType,
			"published_at": time.Now().UTC().Format(time.RFC3339Nano),
		},
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	result := p.publisher.Publish(publishCtx, msg)
	if _, err := result.Get(publishCtx); err != nil {
		return fmt.Errorf("publishing %s event: %w", eventType, err)
	}

	return nil
}

// Stop flushes pending messages and releases publisher resources.
func (p *Publisher) Stop() {
	p.publisher.Stop()
}
