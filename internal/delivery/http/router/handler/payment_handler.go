package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bookify/internal/delivery/context"
	"bookify/internal/delivery/http/response"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

type createPaymentRequest struct {
	OrderID   uuid.UUID `json:"order_id" validate:"required"`
	Method    string    `json:"method" validate:"required"`
	Reference string    `json:"payment_reference"`
}

type updatePaymentRequest struct {
	Method    *string `json:"method"`
	Reference *string `json:"payment_reference"`
}

type verifyPaymentRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreatePayment handles the request to file a payment for an order.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.uc.CreatePayment(c.Request().Context(), &usecase.CreatePaymentInput{
		UserID:    userID,
		OrderID:   req.OrderID,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment filed successfully")
}

// UpdatePayment handles the request to correct a filed payment.
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	payment, err := h.uc.UpdatePayment(c.Request().Context(), &usecase.UpdatePaymentInput{
		UserID:    userID,
		PaymentID: paymentID,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment updated successfully")
}

// DeletePayment handles the request to withdraw a filed payment.
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	if err := h.uc.DeletePayment(c.Request().Context(), userID, paymentID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// VerifyPayment handles the admin request to settle or decline a payment.
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.uc.VerifyPayment(c.Request().Context(), &usecase.VerifyPaymentInput{
		PaymentID: paymentID,
		Status:    req.Status,
		RequestID: deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment verified successfully")
}
