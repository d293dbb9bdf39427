package service

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"overcooked-cart/cart-svc/internal/domain"
)

const EventOrderSubmitted = "order_submitted"

// Consumer empties a session's cart once an order for it was submitted
// somewhere else.
type Consumer struct {
	Reader *kafka.Reader
	Carts  CartServiceInterface
	Logger *zap.Logger
}

func NewConsumer(reader *kafka.Reader, carts CartServiceInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Carts:  carts,
		Logger: logger,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	c.logger().Info("starting order events consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger().Info("order events consumer stopped")
				return
			}
			c.logger().Error("error reading message", zap.Error(err))
			continue
		}

		var msg domain.OrderEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.logger().Warn("error unmarshaling order event", zap.Error(err))
			continue
		}

		c.ProcessOrderEvent(ctx, msg)
	}
}

func (c *Consumer) ProcessOrderEvent(ctx context.Context, msg domain.OrderEvent) {
	if msg.Type != EventOrderSubmitted || msg.SessionID == "" {
		return
	}

	if _, err := c.Carts.Clear(ctx, msg.SessionID); err != nil {
		c.logger().Error("error clearing cart",
			zap.String("session_id", msg.SessionID),
			zap.Int("order_id", msg.OrderID),
			zap.Error(err),
		)
		return
	}

	c.logger().Info("cleared cart for submitted order",
		zap.String("session_id", msg.SessionID),
		zap.Int("order_id", msg.OrderID),
	)
}

func (c *Consumer) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

var _ ConsumerInterface = (*Consumer)(nil)
