package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_AddLoyaltyPoints(t *testing.T) {
	profile := &UserProfile{LoyaltyPoints: 100}

	profile.AddLoyaltyPoints(50)
	assert.Equal(t, 150, profile.LoyaltyPoints)

	// Non-positive credits are ignored
	profile.AddLoyaltyPoints(0)
	profile.AddLoyaltyPoints(-10)
	assert.Equal(t, 150, profile.LoyaltyPoints)
}

func TestUserProfile_DeductLoyaltyPoints(t *testing.T) {
	profile := &UserProfile{LoyaltyPoints: 100}

	require.NoError(t, profile.DeductLoyaltyPoints(60))
	assert.Equal(t, 40, profile.LoyaltyPoints)

	// Over-deduction fails without touching the balance
	err := profile.DeductLoyaltyPoints(41)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientLoyaltyPoints)
	assert.Equal(t, 40, profile.LoyaltyPoints)

	err = profile.DeductLoyaltyPoints(-1)
	require.Error(t, err)
	assert.Equal(t, 40, profile.LoyaltyPoints)
}

func TestNormalizeItemType(t *testing.T) {
	tests := []struct {
		raw      string
		expected ItemType
		ok       bool
	}{
		{"ticket", ItemTypeTicket, true},
		{"Ticket", ItemTypeTicket, true},
		{" TICKET ", ItemTypeTicket, true},
		{"product", ItemTypeProduct, true},
		{"Product", ItemTypeProduct, true},
		{"voucher", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		itemType, ok := NormalizeItemType(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw: %q", tt.raw)
		assert.Equal(t, tt.expected, itemType, "raw: %q", tt.raw)
	}
}

func TestCartItem_LineTotal(t *testing.T) {
	item := &CartItem{
		Quantity:  3,
		UnitPrice: decimal.NewFromFloat(19.99),
	}

	assert.Equal(t, "59.97", item.LineTotal().StringFixed(2))
}

func TestOrder_IsDelivered(t *testing.T) {
	assert.False(t, (&Order{Status: OrderStatusUnpaid}).IsDelivered())
	assert.False(t, (&Order{Status: OrderStatusUnderReview}).IsDelivered())
	assert.True(t, (&Order{Status: OrderStatusDelivered}).IsDelivered())
}

func TestParseVerificationStatus(t *testing.T) {
	status, ok := ParseVerificationStatus("Valid")
	assert.True(t, ok)
	assert.Equal(t, PaymentStatusValid, status)

	status, ok = ParseVerificationStatus("Declined")
	assert.True(t, ok)
	assert.Equal(t, PaymentStatusDeclined, status)

	// Pending is not an acceptable verification target
	_, ok = ParseVerificationStatus("Pending")
	assert.False(t, ok)

	_, ok = ParseVerificationStatus("valid")
	assert.False(t, ok)
}
