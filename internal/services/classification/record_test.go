package classification

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger-classifier-backend/internal/models"
)

func testRule() *models.ClassificationRule {
	return &models.ClassificationRule{
		ID:        uuid.New(),
		Category:  "transport",
		Name:      "Uber",
		TypeEntry: "expense",
	}
}

func TestNewRecordNilRule(t *testing.T) {
	rec := NewRecord(decimal.RequireFromString("10"), "desc", time.Now(), time.Now(), nil)
	if rec != nil {
		t.Errorf("expected nil record for nil rule, got %+v", rec)
	}
	if got := NewBankRecord(&models.BankStatement{}, nil); got != nil {
		t.Errorf("expected nil bank record for nil rule, got %+v", got)
	}
}

func TestNewRecordPopulatesDebit(t *testing.T) {
	created := day(2025, time.March, 3)
	posting := day(2025, time.March, 15)
	value := decimal.RequireFromString("42.50")

	rec := NewRecord(value, "Uber*Trip", created, posting, testRule())
	if rec == nil {
		t.Fatal("expected a record")
	}
	if !rec.Debit.Valid || !rec.Debit.Decimal.Equal(value) {
		t.Errorf("expected debit 42.50, got %+v", rec.Debit)
	}
	if rec.Credit.Valid {
		t.Errorf("expected empty credit, got %+v", rec.Credit)
	}
	if !rec.CreateDateTime.Equal(created) || !rec.PaymentDateTime.Equal(posting) {
		t.Errorf("unexpected timestamps: %v / %v", rec.CreateDateTime, rec.PaymentDateTime)
	}
	if rec.Category != "transport" || rec.Name != "Uber" || rec.TypeEntry != "expense" {
		t.Errorf("rule fields not carried over: %+v", rec)
	}
	if rec.Description != "Uber*Trip" {
		t.Errorf("expected original description, got %q", rec.Description)
	}
}

func TestNewBankRecordRoutesByKind(t *testing.T) {
	postDate := day(2025, time.July, 9)
	amount := decimal.RequireFromString("42.50")

	debit := NewBankRecord(&models.BankStatement{
		Description: "Mercado",
		Amount:      amount,
		PostDate:    postDate,
		Kind:        models.KindDebit,
	}, testRule())
	if !debit.Debit.Valid || !debit.Debit.Decimal.Equal(amount) {
		t.Errorf("expected debit side populated, got %+v", debit.Debit)
	}
	if debit.Credit.Valid {
		t.Errorf("expected credit side empty, got %+v", debit.Credit)
	}

	credit := NewBankRecord(&models.BankStatement{
		Description: "Estorno",
		Amount:      amount,
		PostDate:    postDate,
		Kind:        models.KindCredit,
	}, testRule())
	if !credit.Credit.Valid || !credit.Credit.Decimal.Equal(amount) {
		t.Errorf("expected credit side populated, got %+v", credit.Credit)
	}
	if credit.Debit.Valid {
		t.Errorf("expected debit side empty, got %+v", credit.Debit)
	}

	// Both timestamps are the post date in the bank pipeline.
	if !debit.CreateDateTime.Equal(postDate) || !debit.PaymentDateTime.Equal(postDate) {
		t.Errorf("expected both timestamps at post date, got %v / %v",
			debit.CreateDateTime, debit.PaymentDateTime)
	}
}
