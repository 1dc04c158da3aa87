package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      string          `gorm:"type:varchar(20);not null;default:'Unpaid'"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	OrderDate   time.Time       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items   []*CartItemModel `gorm:"foreignKey:OrderID"`
	Payment *PaymentModel    `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
