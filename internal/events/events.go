// Package events carries store notifications over an in-process Watermill
// GoChannel bus.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"
)

// Topics published by the services.
const (
	TopicUserCreated = "user.created"
	TopicPostCreated = "post.created"
)

// UserCreated is published after a user is appended. It never carries the
// password.
type UserCreated struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostCreated is published after a blog post is appended.
type PostCreated struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	AuthorID  string    `json:"authorId"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Handler processes one event payload.
type Handler func(topic string, payload []byte) error

// Bus is a JSON event bus on top of a Watermill GoChannel.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger zerolog.Logger
}

// NewBus creates a bus whose subscriber channels buffer bufferSize messages.
func NewBus(bufferSize int64, logger zerolog.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: bufferSize,
			Persistent:          false,
		},
		NewWatermillLogger(logger),
	)
	return &Bus{pubsub: pubsub, logger: logger}
}

// Publish marshals payload to JSON and sends it on topic. Messages published
// with no subscriber are dropped.
func (b *Bus) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.Metadata.Set("topic", topic)
	msg.Metadata.Set("published_at", time.Now().UTC().Format(time.RFC3339Nano))

	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", topic, err)
	}
	return nil
}

// Subscribe runs handler for every message on topic until ctx is done or the
// bus is closed. Handler errors are logged and the message is acked anyway
// so a poisoned event cannot loop.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("events: handler must not be nil")
	}
	msgs, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	go func() {
		for msg := range msgs {
			if err := handler(topic, msg.Payload); err != nil {
				b.logger.Error().Err(err).
					Str("topic", topic).
					Str("message_id", msg.UUID).
					Msg("event handler failed")
			}
			msg.Ack()
		}
	}()
	return nil
}

// Close stops all subscriptions.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
