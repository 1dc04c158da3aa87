package usecase

import (
	"context"

	"bookify/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a line item to a cart.
// The unit price is snapshotted from the catalog at add time, not taken from
// the client.
type AddCartItemInput struct {
	UserID   uuid.UUID
	ItemID   uuid.UUID
	ItemType string
	Quantity int
}

// CartUsecase defines the interface for cart-related business operations.
type CartUsecase interface {
	// GetCart retrieves the user's cart with its active items.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem validates the referenced catalog item and appends a line item
	// with a snapshotted unit price.
	AddItem(ctx context.Context, input *AddCartItemInput) (*entity.CartItem, error)

	// RemoveItem soft-deletes an active item from the user's cart.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
}
