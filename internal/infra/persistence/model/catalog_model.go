package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketModel mirrors the 'tickets' table.
type TicketModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventName         string          `gorm:"type:varchar(255);not null"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	QuantityAvailable int             `gorm:"not null"`
	QuantitySold      int             `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "tickets"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `gorm:"not null"`
	QuantitySold  int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
