package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-transaction-engine/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Topics names the streams the engine produces to and consumes from.
type Topics struct {
	DepositRequested    string `mapstructure:"deposit_requested"`
	WithdrawalRequested string `mapstructure:"withdrawal_requested"`
	DepositCompleted    string `mapstructure:"deposit_completed"`
	WithdrawalCompleted string `mapstructure:"withdrawal_completed"`
	WithdrawalFailed    string `mapstructure:"withdrawal_failed"`
}

// Producer implements ports.EventPublisher over a single kafka writer. The
// topic is set per message; messages are keyed by transaction uid so every
// event of one transaction lands on the same partition, in order.
type Producer struct {
	writer *kafka.Writer
	topics Topics
	log    zerolog.Logger
}

// NewWriter builds the shared kafka writer.
func NewWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{}, // key hash keeps per-transaction order
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		MaxAttempts:  10,
	}
}

// NewProducer creates a new Producer.
func NewProducer(writer *kafka.Writer, topics Topics, log zerolog.Logger) *Producer {
	return &Producer{writer: writer, topics: topics, log: log}
}

// PublishDepositRequested emits a deposit settlement request.
func (p *Producer) PublishDepositRequested(ctx context.Context, event domain.DepositRequestedEvent) error {
	return p.publish(ctx, p.topics.DepositRequested, event.TransactionUid.String(), event)
}

// PublishWithdrawalRequested emits a withdrawal settlement request.
func (p *Producer) PublishWithdrawalRequested(ctx context.Context, event domain.WithdrawalRequestedEvent) error {
	return p.publish(ctx, p.topics.WithdrawalRequested, event.TransactionUid.String(), event)
}

func (p *Producer) publish(ctx context.Context, topic, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write message to %s: %w", topic, err)
	}

	p.log.Debug().
		Str("topic", topic).
		Str("key", key).
		Msg("published event")
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
