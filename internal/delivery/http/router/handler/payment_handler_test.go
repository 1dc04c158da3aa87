package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookify/internal/delivery/http/validator"
	"bookify/internal/domain/entity"
	mockUC "bookify/internal/mocks/usecase"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPaymentHandler_CreatePayment_BindsPaymentReference(t *testing.T) {
	uc := mockUC.NewMockPaymentUsecase(t)
	handler := NewPaymentHandler(uc, newTestLogger())

	userID := uuid.New()
	orderID := uuid.New()
	payment := &entity.Payment{ID: uuid.New(), OrderID: orderID, Status: entity.PaymentStatusPending}

	uc.EXPECT().
		CreatePayment(mock.Anything, mock.AnythingOfType("*usecase.CreatePaymentInput")).
		Run(func(ctx context.Context, input *usecase.CreatePaymentInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, orderID, input.OrderID)
			assert.Equal(t, "bank_transfer", input.Method)
			assert.Equal(t, "TXN-0042", input.Reference)
		}).
		Return(payment, nil)

	body := `{"order_id":"` + orderID.String() + `","method":"bank_transfer","payment_reference":"TXN-0042"}`
	c, rec := newTestContext(http.MethodPost, "/api/payments", body)
	c.Set("userID", userID)

	require.NoError(t, handler.CreatePayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentHandler_UpdatePayment_BindsPaymentReference(t *testing.T) {
	uc := mockUC.NewMockPaymentUsecase(t)
	handler := NewPaymentHandler(uc, newTestLogger())

	userID := uuid.New()
	paymentID := uuid.New()
	payment := &entity.Payment{ID: paymentID, Status: entity.PaymentStatusPending}

	uc.EXPECT().
		UpdatePayment(mock.Anything, mock.AnythingOfType("*usecase.UpdatePaymentInput")).
		Run(func(ctx context.Context, input *usecase.UpdatePaymentInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, paymentID, input.PaymentID)
			assert.Nil(t, input.Method)
			require.NotNil(t, input.Reference)
			assert.Equal(t, "TXN-0043", *input.Reference)
		}).
		Return(payment, nil)

	c, rec := newTestContext(http.MethodPut, "/api/payments/"+paymentID.String(), `{"payment_reference":"TXN-0043"}`)
	c.Set("userID", userID)
	c.SetParamNames("paymentID")
	c.SetParamValues(paymentID.String())

	require.NoError(t, handler.UpdatePayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentHandler_DeletePayment_NoContent(t *testing.T) {
	uc := mockUC.NewMockPaymentUsecase(t)
	handler := NewPaymentHandler(uc, newTestLogger())

	userID := uuid.New()
	paymentID := uuid.New()

	uc.EXPECT().DeletePayment(mock.Anything, userID, paymentID).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/api/payments/"+paymentID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("paymentID")
	c.SetParamValues(paymentID.String())

	require.NoError(t, handler.DeletePayment(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
