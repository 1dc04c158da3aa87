package handler

import (
	"net/http"
	"testing"

	"bookify/internal/domain/entity"
	mockUC "bookify/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Checkout_ReturnsOK(t *testing.T) {
	uc := mockUC.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	userID := uuid.New()
	order := &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.OrderStatusUnpaid,
		TotalAmount: decimal.NewFromFloat(70.00),
	}

	uc.EXPECT().Checkout(mock.Anything, userID).Return(order, nil)

	c, rec := newTestContext(http.MethodPost, "/api/orders/checkout", "")
	c.Set("userID", userID)

	require.NoError(t, handler.Checkout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), order.ID.String())
}

func TestOrderHandler_DeleteOrder_NoContent(t *testing.T) {
	uc := mockUC.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, newTestLogger())

	userID := uuid.New()
	orderID := uuid.New()

	uc.EXPECT().DeleteOrder(mock.Anything, userID, orderID).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/api/orders/"+orderID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())

	require.NoError(t, handler.DeleteOrder(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
