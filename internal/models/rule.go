package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClassificationRule maps a statement description to a ledger category.
// CheckName narrows the rule to a single payer; nil matches any payer.
// CheckValue/CheckValueOperator optionally gate the rule on the amount.
type ClassificationRule struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	DescriptionSlug    string    `gorm:"index"`
	CheckName          *string
	CheckValue         decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	CheckValueOperator string              `gorm:"type:varchar(1)"`
	Category           string
	Name               string
	TypeEntry          string
	CreatedAt          time.Time
}
