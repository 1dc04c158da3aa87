package service

import (
	"context"
)

// Order event types emitted by payment verification.
const (
	OrderEventSettled         = "order.settled"
	OrderEventPaymentDeclined = "order.payment_declined"
)

// OrderEvent is published when a payment verification reaches a terminal
// outcome, for downstream consumers such as receipt mail and analytics.
type OrderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventType   string `json:"event_type"`
	OrderID     string `json:"order_id"`
	UserID      string `json:"user_id"`
	PaymentID   string `json:"payment_id"`
	TotalAmount string `json:"total_amount"` // Decimal string, e.g. "120.00"
	ItemCount   int    `json:"item_count"`
	OccurredAt  string `json:"occurred_at"` // RFC3339 UTC
}

// EventPublisher defines the interface for publishing order events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
