package model

import (
	"time"

	"github.com/google/uuid"
)

// RewardModel mirrors the 'rewards' table. A reward references a catalog item
// that can be claimed with loyalty points.
type RewardModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null"`
	ItemType   string    `gorm:"type:varchar(20);not null"`
	PointsCost int       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardModel) TableName() string {
	return "rewards"
}

// RedemptionModel mirrors the 'redemptions' table. It records a user claiming
// a reward and tracks the discount lifecycle of the spent points.
type RedemptionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RewardID    uuid.UUID `gorm:"type:uuid;not null"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null"`
	ItemType    string    `gorm:"type:varchar(20);not null"`
	PointsSpent int       `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "redemptions"
}
