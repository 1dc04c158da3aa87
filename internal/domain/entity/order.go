package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. The only actor permitted to
// move an order out of UnderReview is its payment's verification.
type OrderStatus string

// Order statuses. Unpaid -> UnderReview -> Delivered, or back to Unpaid on a
// declined or deleted payment.
const (
	OrderStatusUnpaid      OrderStatus = "Unpaid"
	OrderStatusUnderReview OrderStatus = "UnderReview"
	OrderStatusDelivered   OrderStatus = "Delivered"
)

// Order is the snapshot of cart items converted into a purchase intent.
// TotalAmount is computed once at checkout (including any redemption
// discount) and never recomputed afterwards.
type Order struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Status      OrderStatus
	TotalAmount decimal.Decimal
	OrderDate   time.Time
	Items       []*CartItem // Line items re-parented from the cart at checkout.
	Payment     *Payment    // At most one payment; nil until one is filed.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDelivered reports whether the order has reached its terminal state.
// Delivered orders are immutable.
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}
