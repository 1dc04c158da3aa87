package usecase

import (
	"context"

	"bookify/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePaymentInput defines the data required to file a payment for an order.
type CreatePaymentInput struct {
	UserID    uuid.UUID
	OrderID   uuid.UUID
	Method    string
	Reference string
}

// UpdatePaymentInput defines the data for correcting a filed payment.
// Nil fields are left unchanged.
type UpdatePaymentInput struct {
	UserID    uuid.UUID
	PaymentID uuid.UUID
	Method    *string
	Reference *string
}

// VerifyPaymentInput defines the data for an admin payment verification.
type VerifyPaymentInput struct {
	PaymentID uuid.UUID
	Status    string
	RequestID string
}

// PaymentUsecase defines the interface for payment-related business operations.
type PaymentUsecase interface {
	// CreatePayment files a Pending payment for an Unpaid order and moves the
	// order to UnderReview.
	CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error)

	// UpdatePayment corrects the method or reference of a filed payment and
	// resets it to Pending for re-verification.
	UpdatePayment(ctx context.Context, input *UpdatePaymentInput) (*entity.Payment, error)

	// DeletePayment withdraws a filed payment and returns the order to Unpaid.
	DeletePayment(ctx context.Context, userID, paymentID uuid.UUID) error

	// VerifyPayment settles or declines a pending payment. A Valid outcome
	// finalizes redemptions, adjusts inventory, accrues loyalty points, and
	// delivers the order, all atomically.
	VerifyPayment(ctx context.Context, input *VerifyPaymentInput) (*entity.Payment, error)
}
