// Package qrcode implements the ticket pass service using QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"bookify/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type ticketPassService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// passData is the payload encoded into a ticket pass QR code.
type passData struct {
	OrderID string `json:"order_id"`
	ItemID  string `json:"item_id"`
	Type    string `json:"type"`
}

// NewTicketPassService creates a new ticket pass service instance
func NewTicketPassService(size int, errorCorrectionLevel string) service.TicketPassService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &ticketPassService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePassQR generates a QR code PNG for one ticket line item of an order.
func (s *ticketPassService) GeneratePassQR(orderID, itemID uuid.UUID) ([]byte, error) {
	data := passData{
		OrderID: orderID.String(),
		ItemID:  itemID.String(),
		Type:    "ticket_pass",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pass data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePassQR parses scanned QR payload and returns the order and item IDs.
func (s *ticketPassService) ParsePassQR(qrData string) (uuid.UUID, uuid.UUID, error) {
	var data passData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to unmarshal pass data: %w", err)
	}

	if data.Type != "ticket_pass" {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid pass type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	itemID, err := uuid.Parse(data.ItemID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to parse item ID: %w", err)
	}

	return orderID, itemID, nil
}
