package repository

import (
	"context"

	"bookify/internal/domain/entity"
	"bookify/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrDuplicatePayment is returned when filing a second payment for an order.
	ErrDuplicatePayment = errors.New("payment already exists for this order")
)

// PaymentRepository defines the interface for payment persistence.
type PaymentRepository interface {
	// Create persists a new payment. The unique index on order_id enforces
	// the one-payment-per-order invariant.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByOrderID retrieves the payment filed for an order, if any.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)

	// Update persists the method, reference, and status of a payment.
	Update(ctx context.Context, payment *entity.Payment) error

	// UpdateStatus sets the payment status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// Delete removes a payment row. The owning order's status must be reset
	// before calling this.
	Delete(ctx context.Context, id uuid.UUID) error
}
