package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// ConsumerConfig configures the settlement event consumer.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
	Topics  Topics
}

// Consumer runs one reader per settlement outcome topic and dispatches events
// to the settlement service. Offsets are committed only after the handler
// returns nil, so a crashed or failed handling is redelivered.
type Consumer struct {
	cfg        ConsumerConfig
	settlement ports.SettlementService
	newReader  func(topic string) reader
	log        zerolog.Logger
}

// reader abstracts *kafka.Reader for tests.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewConsumer creates a Consumer backed by kafka consumer groups.
func NewConsumer(cfg ConsumerConfig, settlement ports.SettlementService, log zerolog.Logger) *Consumer {
	return &Consumer{
		cfg:        cfg,
		settlement: settlement,
		newReader: func(topic string) reader {
			return kafka.NewReader(kafka.ReaderConfig{
				Brokers:  cfg.Brokers,
				GroupID:  cfg.GroupID,
				Topic:    topic,
				MinBytes: 10,
				MaxBytes: 10e6,
				MaxWait:  500 * time.Millisecond,
			})
		},
		log: log,
	}
}

// Run consumes all three settlement outcome topics until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	handlers := map[string]func(context.Context, []byte) error{
		c.cfg.Topics.DepositCompleted:    c.handleDepositCompleted,
		c.cfg.Topics.WithdrawalCompleted: c.handleWithdrawalCompleted,
		c.cfg.Topics.WithdrawalFailed:    c.handleWithdrawalFailed,
	}

	var wg sync.WaitGroup
	for topic, handle := range handlers {
		wg.Add(1)
		go func(topic string, handle func(context.Context, []byte) error) {
			defer wg.Done()
			c.consumeTopic(ctx, topic, handle)
		}(topic, handle)
	}
	wg.Wait()
	return ctx.Err()
}

func (c *Consumer) consumeTopic(ctx context.Context, topic string, handle func(context.Context, []byte) error) {
	r := c.newReader(topic)
	defer r.Close() //nolint:errcheck

	log := c.log.With().Str("topic", topic).Logger()
	log.Info().Msg("consuming settlement events")

	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			log.Error().Err(err).Msg("fetch message failed")
			continue
		}

		if err := handle(ctx, msg.Value); err != nil {
			// No commit: the broker redelivers the event.
			log.Error().Err(err).
				Int64("offset", msg.Offset).
				Msg("event handling failed, leaving uncommitted")
			continue
		}

		if err := r.CommitMessages(ctx, msg); err != nil {
			log.Error().Err(err).
				Int64("offset", msg.Offset).
				Msg("commit failed")
		}
	}
}

func (c *Consumer) handleDepositCompleted(ctx context.Context, value []byte) error {
	var event domain.DepositCompletedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		// Malformed payloads are dropped, not redelivered forever.
		c.log.Error().Err(err).Msg("malformed deposit-completed event dropped")
		return nil
	}
	if err := c.settlement.HandleDepositCompleted(ctx, event); err != nil {
		return fmt.Errorf("deposit completed %s: %w", event.TransactionUid, err)
	}
	return nil
}

func (c *Consumer) handleWithdrawalCompleted(ctx context.Context, value []byte) error {
	var event domain.WithdrawalCompletedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		c.log.Error().Err(err).Msg("malformed withdrawal-completed event dropped")
		return nil
	}
	if err := c.settlement.HandleWithdrawalCompleted(ctx, event); err != nil {
		return fmt.Errorf("withdrawal completed %s: %w", event.TransactionUid, err)
	}
	return nil
}

func (c *Consumer) handleWithdrawalFailed(ctx context.Context, value []byte) error {
	var event domain.WithdrawalFailedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		c.log.Error().Err(err).Msg("malformed withdrawal-failed event dropped")
		return nil
	}
	if err := c.settlement.HandleWithdrawalFailed(ctx, event); err != nil {
		return fmt.Errorf("withdrawal failed %s: %w", event.TransactionUid, err)
	}
	return nil
}
