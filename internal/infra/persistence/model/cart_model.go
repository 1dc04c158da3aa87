package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table. Each user owns exactly one cart.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. A line item belongs to either
// a cart or an order, never both. The check constraint enforces the exclusive
// parentage at the database level.
type CartItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID    *uuid.UUID      `gorm:"type:uuid;index;check:chk_cart_item_parent,(cart_id IS NULL) <> (order_id IS NULL)"`
	OrderID   *uuid.UUID      `gorm:"type:uuid;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null"`
	ItemType  string          `gorm:"type:varchar(20);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status    string          `gorm:"type:varchar(20);not null;default:'Active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
