package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable store item with a bounded stock.
type Product struct {
	ID            uuid.UUID
	Name          string
	Price         decimal.Decimal
	StockQuantity int // Remaining stock; decremented at settlement.
	QuantitySold  int // Settled sales counter; incremented at settlement.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
