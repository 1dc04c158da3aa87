package handler

import (
	"log/slog"
	"net/http"

	"bookify/internal/delivery/http/response"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkout handles the request to convert the cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	order, err := h.uc.Checkout(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order created successfully")
}

// ListOrders handles the request to list the user's orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles the request to view one order with its items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// DeleteOrder handles the request to delete an order.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), userID, orderID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TicketPass serves the QR entry pass for a ticket line item of a delivered order.
func (h *OrderHandler) TicketPass(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	png, err := h.uc.TicketPass(c.Request().Context(), userID, orderID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
