package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Statement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description string
	Amount      decimal.Decimal `gorm:"type:decimal(12,2)"`
	OccurredAt  time.Time       `gorm:"column:occurred_at"`
	IsProcessed bool            `gorm:"index"`
	Details     datatypes.JSON
	CreatedAt   time.Time
}
