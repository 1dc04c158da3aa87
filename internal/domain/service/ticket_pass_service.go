package service

import (
	"github.com/google/uuid"
)

// TicketPassService defines the interface for generating and parsing the QR
// passes served for ticket line items of delivered orders.
type TicketPassService interface {
	// GeneratePassQR generates a QR code PNG for one ticket line item.
	GeneratePassQR(orderID, itemID uuid.UUID) ([]byte, error)

	// ParsePassQR parses scanned QR payload and returns the order and item IDs.
	ParsePassQR(qrData string) (orderID, itemID uuid.UUID, err error)
}
