package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"

	"github.com/IBM/sarama"
)

const EventTypeOrderCreated = "order.created"

// Publisher sends order events to Kafka. Messages are keyed by order record id so
// events for one order stay on one partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

var _ interfaces.IEventPublisher = (*Publisher)(nil)

func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("topic", topic).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer, topic), nil
}

func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, event entities.OrderCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(EventTypeOrderCreated)},
		{Key: []byte("event_id"), Value: []byte(event.EventID)},
	}
	if id := logger.RequestIDFromContext(ctx); id != "" {
		headers = append(headers, sarama.RecordHeader{Key: []byte("request_id"), Value: []byte(id)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(event.OrderRecordID),
		Value:   sarama.ByteEncoder(body),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		logger.Component(ctx, "orders", "publisher").Error().
			Err(err).
			Str("topic", p.topic).
			Str("order_id", event.OrderID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	logger.Component(ctx, "orders", "publisher").Info().
		Str("event_id", event.EventID).
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Str("order_record_id", event.OrderRecordID).
		Msg("Order created event published")
	return nil
}

func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
