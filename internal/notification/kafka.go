package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/segmentio/kafka-go"
)

const confirmationTopic = "order-confirmations"

// orderConfirmedEvent is the payload the mailer consumes.
type orderConfirmedEvent struct {
	OrderID     string             `json:"order_id"`
	CustomerID  string             `json:"customer_id"`
	Status      string             `json:"status"`
	Items       []domain.OrderItem `json:"items"`
	Subtotal    string             `json:"subtotal"`
	Freight     string             `json:"freight"`
	Total       string             `json:"total"`
	PaymentType string             `json:"payment_type"`
	CreatedAt   time.Time          `json:"created_at"`
}

type KafkaNotifier struct {
	writer *kafka.Writer
}

func NewKafkaNotifier(brokers ...string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  confirmationTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaNotifier{writer: w}
}

func (n *KafkaNotifier) SendOrderConfirmation(ctx context.Context, order *domain.Order) error {
	event := orderConfirmedEvent{
		OrderID:     order.ID.String(),
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		Items:       order.Items,
		Subtotal:    order.Subtotal.StringFixed(2),
		Freight:     order.Freight.StringFixed(2),
		Total:       order.Total.StringFixed(2),
		PaymentType: string(order.PaymentType),
		CreatedAt:   order.CreatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order confirmation: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("publish order confirmation: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
