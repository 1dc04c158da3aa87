package repository

import (
	"context"

	"bookify/internal/domain/entity"
	"bookify/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a cart is not found.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart item is not found or already deleted.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart and cart item persistence.
type CartRepository interface {
	// Create persists a new, empty cart.
	Create(ctx context.Context, cart *entity.Cart) error

	// FindByUserID retrieves a user's cart with its active (non-deleted) items.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem persists a new line item attached to a cart.
	AddItem(ctx context.Context, item *entity.CartItem) error

	// SoftDeleteItem marks an active cart item as Deleted. Items attached to
	// an order are never touched by this method.
	SoftDeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// ReparentItems transfers the given items from their cart to an order:
	// cart_id is cleared and order_id is set, in one statement. Each item is
	// transferred exactly once.
	ReparentItems(ctx context.Context, itemIDs []uuid.UUID, orderID uuid.UUID) error
}
