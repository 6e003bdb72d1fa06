package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerRecord is append-only. Exactly one of Debit or Credit is set.
type LedgerRecord struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CreateDateTime  time.Time           `gorm:"column:create_date_time"`
	PaymentDateTime time.Time           `gorm:"column:payment_date_time"`
	Debit           decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Credit          decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Category        string
	Name            string
	TypeEntry       string
	Description     string
	CreatedAt       time.Time
}
