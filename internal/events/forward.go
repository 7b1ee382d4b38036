package events

import (
	"context"
)

// Sink is an external destination for events, such as a message broker.
type Sink interface {
	Publish(routingKey string, body []byte) error
}

// Forward relays every event on topics to sink, using the topic as routing
// key.
func Forward(ctx context.Context, bus *Bus, sink Sink, topics ...string) error {
	for _, topic := range topics {
		if err := bus.Subscribe(ctx, topic, func(topic string, payload []byte) error {
			return sink.Publish(topic, payload)
		}); err != nil {
			return err
		}
	}
	return nil
}

// LogEvents subscribes a debug logger to topics.
func LogEvents(ctx context.Context, bus *Bus, topics ...string) error {
	for _, topic := range topics {
		if err := bus.Subscribe(ctx, topic, func(topic string, payload []byte) error {
			bus.logger.Debug().Str("topic", topic).RawJSON("event", payload).Msg("event published")
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}
