package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"tunitest/internal/domain/model"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// Producer publishes order events to Kafka.
type Producer struct {
	producer sarama.SyncProducer
	logger   *log.Entry
}

func NewProducer(brokers []string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1 // required for idempotence

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		logger:   log.WithField("component", "kafka-producer"),
	}, nil
}

func (p *Producer) PublishOrderCreated(o model.Order) error {
	event := OrderEvent{
		EventType:  EventTypeOrderCreated,
		OrderID:    o.ID,
		Status:     string(o.Status),
		TotalPrice: o.TotalPrice,
		BookIDs:    o.BookIDs,
		Timestamp:  time.Now(),
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     TopicOrderEvents,
		Key:       sarama.StringEncoder(o.ID),
		Value:     sarama.ByteEncoder(raw),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).WithField("order_id", o.ID).Error("failed to send order event")
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.WithFields(log.Fields{
		"order_id":  o.ID,
		"partition": partition,
		"offset":    offset,
	}).Debug("order event sent")

	return nil
}

func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(model.Order) error { return nil }
