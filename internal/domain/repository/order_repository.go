package repository

import (
	"context"

	"bookify/internal/domain/entity"
	"bookify/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order is not found (or does not belong
// to the requesting user, for user-scoped lookups).
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists a new order. The order must be persisted before cart
	// items can be re-parented to it.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items, without ownership scoping.
	// Used by payment verification, which acts across users.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUser retrieves an order with its items, scoped to its owner.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)

	// FindByUserID lists a user's orders, newest first, without items.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus sets the order status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdateTotal sets the order total. Only checkout may call this.
	UpdateTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error

	// DeleteItems removes all line items of an order. Must run before Delete
	// because of the foreign key direction.
	DeleteItems(ctx context.Context, orderID uuid.UUID) error

	// Delete removes the order row itself.
	Delete(ctx context.Context, id uuid.UUID) error
}
