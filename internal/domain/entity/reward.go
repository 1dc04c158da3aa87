package entity

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionStatus is the lifecycle state of a loyalty redemption.
type RedemptionStatus string

// Redemption statuses. A redemption is created Pending, becomes Unused once
// its discount has been consumed by a checkout, and is marked Used when a
// settled order item references the same ticket/product.
const (
	RedemptionStatusPending RedemptionStatus = "Pending"
	RedemptionStatusUnused  RedemptionStatus = "Unused"
	RedemptionStatusUsed    RedemptionStatus = "Used"
)

// Reward is a catalog entry exchangeable for loyalty points. It targets a
// specific ticket or product.
type Reward struct {
	ID         uuid.UUID
	Name       string
	ItemID     uuid.UUID // The ticket or product this reward applies to.
	ItemType   ItemType
	PointsCost int // Loyalty points deducted when the reward is redeemed.
	CreatedAt  time.Time
}

// Redemption is a user's exchange of loyalty points for a reward. Points are
// deducted at creation time, before any payment settles; there is no refund
// path if the underlying order later fails payment.
type Redemption struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RewardID    uuid.UUID
	ItemID      uuid.UUID // Copied from the reward for settlement matching.
	ItemType    ItemType
	PointsSpent int
	Status      RedemptionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
