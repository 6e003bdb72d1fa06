package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindCredit TransactionKind = "credit"
	KindDebit  TransactionKind = "debit"
)

func (k TransactionKind) Valid() bool {
	return k == KindCredit || k == KindDebit
}

// BankStatement is a card/account movement tied to a payer document.
// Kind is fixed at ingestion; rows with anything other than credit or
// debit are never accepted through the API.
type BankStatement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description string
	Amount      decimal.Decimal `gorm:"type:decimal(12,2)"`
	PostDate    time.Time       `gorm:"column:post_date"`
	Document    string          `gorm:"index"`
	Kind        TransactionKind `gorm:"type:varchar(10)"`
	IsProcessed bool            `gorm:"index"`
	CreatedAt   time.Time
}
