package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType tags a cart item as referencing either a ticket or a product.
type ItemType string

// Supported item type tags.
const (
	ItemTypeTicket  ItemType = "ticket"
	ItemTypeProduct ItemType = "product"
)

// NormalizeItemType canonicalizes a raw item type tag (trimmed,
// case-insensitive). The second return value reports whether the tag is known.
func NormalizeItemType(raw string) (ItemType, bool) {
	switch ItemType(strings.ToLower(strings.TrimSpace(raw))) {
	case ItemTypeTicket:
		return ItemTypeTicket, true
	case ItemTypeProduct:
		return ItemTypeProduct, true
	default:
		return "", false
	}
}

// CartItemStatus is the explicit tombstone tag on a cart item. An explicit tag
// avoids the three-valued logic of a nullable boolean.
type CartItemStatus string

// Cart item statuses.
const (
	CartItemStatusActive  CartItemStatus = "Active"
	CartItemStatusDeleted CartItemStatus = "Deleted"
)

// Cart holds the unsettled line items of a single user. It is created at
// registration and lives as long as the user does.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*CartItem // Active items only; soft-deleted items are filtered by the repository.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is a line item belonging to exactly one of {cart, order}. At
// checkout the item is re-parented: CartID is cleared and OrderID is set.
// Items attached to an order are never physically removed.
type CartItem struct {
	ID        uuid.UUID
	CartID    *uuid.UUID // Set while the item sits in a cart; nil afterwards.
	OrderID   *uuid.UUID // Set once the item has been checked out; nil before.
	ItemID    uuid.UUID  // Reference to the ticket or product.
	ItemType  ItemType
	Quantity  int             // Always >= 1.
	UnitPrice decimal.Decimal // Snapshotted at add-time; never re-read from the catalog.
	Status    CartItemStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineTotal returns quantity x unit price.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
