package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"merchant-settlement/config"
	"merchant-settlement/internal/core/domain"

	"github.com/segmentio/kafka-go"
)

// Publisher implements ports.EventPublisher with one writer per topic.
type Publisher struct {
	transactions *kafka.Writer
	validations  *kafka.Writer
	payouts      *kafka.Writer
}

// NewPublisher creates writers for the three pipeline topics.
func NewPublisher(cfg config.KafkaConfig) *Publisher {
	newWriter := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		}
	}
	return &Publisher{
		transactions: newWriter(cfg.TransactionsTopic),
		validations:  newWriter(cfg.ValidationResultTopic),
		payouts:      newWriter(cfg.PayoutsReadyTopic),
	}
}

// PublishTransactionCreated announces an accepted submission.
func (p *Publisher) PublishTransactionCreated(ctx context.Context, ev domain.TransactionCreatedEvent) error {
	return p.publish(ctx, p.transactions, ev.ID.String(), ev)
}

// PublishValidationResult carries the validator's verdict.
func (p *Publisher) PublishValidationResult(ctx context.Context, ev domain.ValidationResultEvent) error {
	return p.publish(ctx, p.validations, ev.ID.String(), ev)
}

// PublishPayoutReady hands a READY_TO_PAY payout to the processor.
func (p *Publisher) PublishPayoutReady(ctx context.Context, ev domain.PayoutReadyEvent) error {
	return p.publish(ctx, p.payouts, ev.ID.String(), ev)
}

func (p *Publisher) publish(ctx context.Context, w *kafka.Writer, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("write message to %s: %w", w.Topic, err)
	}
	return nil
}

// Close flushes and closes all writers.
func (p *Publisher) Close() error {
	for _, w := range []*kafka.Writer{p.transactions, p.validations, p.payouts} {
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}
