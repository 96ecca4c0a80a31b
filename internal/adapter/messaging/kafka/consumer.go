package kafka

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// HandlerFunc processes one message body. A returned error marks the message
// malformed or unprocessable; it is logged and the message is dropped, never
// redelivered by this consumer.
type HandlerFunc func(ctx context.Context, value []byte) error

// Consumer wraps a kafka.Reader group consumer processing one message at a
// time. Delivery is at-least-once: handlers must tolerate duplicates.
type Consumer struct {
	reader  *kafka.Reader
	handler HandlerFunc
	log     zerolog.Logger
}

// NewConsumer creates a group consumer for one topic.
func NewConsumer(brokers []string, groupID, topic string, handler HandlerFunc, log zerolog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
		handler: handler,
		log:     log.With().Str("topic", topic).Logger(),
	}
}

// Run consumes until the context is cancelled. Handler errors never stop the
// consumer; the offending message is logged and committed past.
func (c *Consumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			c.log.Error().Err(err).Msg("fetch message failed")
			continue
		}

		if err := c.handler(ctx, msg.Value); err != nil {
			c.log.Error().Err(err).
				Int64("offset", msg.Offset).
				Msg("message dropped")
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Error().Err(err).Msg("commit failed")
		}
	}
}

// Close shuts the underlying reader down.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
