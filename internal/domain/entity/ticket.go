package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket is a sellable admission to an event with a bounded inventory.
type Ticket struct {
	ID                uuid.UUID
	EventName         string
	Name              string // Tier name, e.g. "Early Bird", "VIP".
	Price             decimal.Decimal
	QuantityAvailable int // Remaining sellable inventory; decremented at settlement.
	QuantitySold      int // Settled sales counter; incremented at settlement.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
