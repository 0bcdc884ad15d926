package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	portsevents "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/events"
	"github.com/segmentio/kafka-go"
)

// Publisher writes transaction-completed events to a Kafka topic. Messages
// are keyed by account ID so per-account ordering survives partitioning.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// Ensure Publisher implements portsevents.Publisher
var _ portsevents.Publisher = (*Publisher)(nil)

func (p *Publisher) PublishTransactionCompleted(ctx context.Context, event portsevents.TransactionCompleted) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction completed event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.AccountID, 10)),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to write transaction completed event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
