package storage

import (
	"context"
	"encoding/json"

	"overcooked-cart/cart-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishCartEvent keys messages by session so one cart's events stay ordered.
func (p *KafkaPublisher) PublishCartEvent(ctx context.Context, msg domain.CartEvent) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.SessionID),
		Value: payload,
	})
}
