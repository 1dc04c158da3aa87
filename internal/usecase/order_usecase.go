package usecase

import (
	"context"

	"bookify/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// Checkout converts the user's active cart items into a new Unpaid order.
	// Line items are re-parented, the total is computed from snapshotted
	// prices, and at most one pending redemption discount is applied.
	Checkout(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// ListOrders lists the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder retrieves one of the user's orders with its line items.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// DeleteOrder removes an order along with its payment and line items.
	// Delivered orders are immutable and cannot be deleted.
	DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error

	// TicketPass renders a QR entry pass for a ticket line item of a
	// Delivered order.
	TicketPass(ctx context.Context, userID, orderID, itemID uuid.UUID) ([]byte, error)
}
