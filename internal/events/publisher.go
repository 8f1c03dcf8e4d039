// Package events streams order lifecycle changes to Kafka for downstream
// consumers (kitchen displays, analytics). Publishing is best-effort: a
// failed publish is logged by the caller and never fails the request.
package events

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/Tahashy/Panel-Administrativo/internal/models"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type Publisher interface {
	Publish(eventType string, order *models.Order) error
	Close() error
}

type envelope struct {
	Event      string        `json:"event"`
	OccurredAt time.Time     `json:"occurred_at"`
	Order      *models.Order `json:"order"`
}

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokerList, topic string) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokers := strings.Split(brokerList, ",")
	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokers)
	return &KafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *KafkaPublisher) Publish(eventType string, order *models.Order) error {
	msg, err := json.Marshal(envelope{
		Event:      eventType,
		OccurredAt: time.Now().UTC(),
		Order:      order,
	})
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(order.ID),
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		return fmt.Errorf("send %s for order %s: %w", eventType, order.ID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NoopPublisher stands in when the event stream is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, *models.Order) error { return nil }
func (NoopPublisher) Close() error                        { return nil }
