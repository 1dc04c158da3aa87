package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. The unique index on OrderID
// enforces at most one payment per order.
type PaymentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Method    string    `gorm:"type:varchar(50);not null"`
	Reference string    `gorm:"type:varchar(255)"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
