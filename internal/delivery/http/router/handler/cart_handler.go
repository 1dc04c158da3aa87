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

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addCartItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	ItemType string    `json:"item_type" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

// GetCart handles the request to view the current cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddItem handles the request to add a line item to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.AddItem(c.Request().Context(), &usecase.AddCartItemInput{
		UserID:   userID,
		ItemID:   req.ItemID,
		ItemType: req.ItemType,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// RemoveItem handles the request to remove a line item from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item ID")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}
