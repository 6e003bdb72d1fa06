package classification

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger-classifier-backend/internal/models"
)

// NewRecord builds the ledger record for one posting of a classified
// statement. Returns nil when no rule matched; callers skip nil records.
func NewRecord(value decimal.Decimal, description string, createdAt, postingDate time.Time, rule *models.ClassificationRule) *models.LedgerRecord {
	if rule == nil {
		return nil
	}
	return &models.LedgerRecord{
		ID:              uuid.New(),
		CreateDateTime:  createdAt,
		PaymentDateTime: postingDate,
		Debit:           decimal.NullDecimal{Decimal: value, Valid: true},
		Category:        rule.Category,
		Name:            rule.Name,
		TypeEntry:       rule.TypeEntry,
		Description:     description,
		CreatedAt:       time.Now(),
	}
}

// NewBankRecord builds the ledger record for a classified bank statement.
// The amount lands on the debit or credit side according to the statement
// kind, never both; both timestamps are the statement post date.
func NewBankRecord(s *models.BankStatement, rule *models.ClassificationRule) *models.LedgerRecord {
	if rule == nil {
		return nil
	}

	rec := &models.LedgerRecord{
		ID:              uuid.New(),
		CreateDateTime:  s.PostDate,
		PaymentDateTime: s.PostDate,
		Category:        rule.Category,
		Name:            rule.Name,
		TypeEntry:       rule.TypeEntry,
		Description:     s.Description,
		CreatedAt:       time.Now(),
	}

	switch s.Kind {
	case models.KindDebit:
		rec.Debit = decimal.NullDecimal{Decimal: s.Amount, Valid: true}
	case models.KindCredit:
		rec.Credit = decimal.NullDecimal{Decimal: s.Amount, Valid: true}
	}

	return rec
}
