package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the verification state of a payment.
type PaymentStatus string

// Payment statuses. Pending is the only state a verification may act on.
const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusValid    PaymentStatus = "Valid"
	PaymentStatusDeclined PaymentStatus = "Declined"
)

// ParseVerificationStatus parses an admin verification target. Only Valid and
// Declined are acceptable targets; anything else is rejected by the caller.
func ParseVerificationStatus(raw string) (PaymentStatus, bool) {
	switch PaymentStatus(raw) {
	case PaymentStatusValid:
		return PaymentStatusValid, true
	case PaymentStatusDeclined:
		return PaymentStatusDeclined, true
	default:
		return "", false
	}
}

// Payment records the settlement attempt for an order (1:1). Its verification
// drives the order's status transitions.
type Payment struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Method    string // Payment method, e.g. "bank_transfer", "card".
	Reference string // External payment reference supplied by the payer.
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
