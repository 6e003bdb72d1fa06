package classification

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ledger-classifier-backend/internal/models"
)

// Charges past the cutoff day post to the next cycle's midpoint.
const (
	cutoffDay = 8
	anchorDay = 15
)

// Posting is one (value, date) pair a statement expands into.
type Posting struct {
	Value decimal.Decimal
	Date  time.Time
}

// AnchorDate returns the posting date for a statement time: always the
// 15th, pushed into the next month once the day-of-month reaches the
// billing cutoff. December rolls over into January.
func AnchorDate(t time.Time) time.Time {
	anchor := time.Date(t.Year(), t.Month(), anchorDay, 0, 0, 0, 0, t.Location())
	if t.Day() >= cutoffDay {
		anchor = anchor.AddDate(0, 1, 0)
	}
	return anchor
}

type installmentDetails struct {
	Charges *struct {
		Count  int   `json:"count"`
		Amount int64 `json:"amount"`
	} `json:"charges"`
}

// ExpandInstallments produces the postings for a statement. A statement
// carrying a charges payload expands into count postings one month apart,
// each worth the per-installment amount (given in minor units). Anything
// else expands into a single posting of the statement amount.
func ExpandInstallments(s *models.Statement) ([]Posting, error) {
	first := AnchorDate(s.OccurredAt)

	var details installmentDetails
	if len(s.Details) > 0 {
		if err := json.Unmarshal(s.Details, &details); err != nil {
			return nil, fmt.Errorf("invalid details payload: %w", err)
		}
	}

	if details.Charges == nil {
		return []Posting{{Value: s.Amount, Date: first}}, nil
	}

	if details.Charges.Count <= 0 || details.Charges.Amount <= 0 {
		return nil, fmt.Errorf("installment payload missing count or amount")
	}

	value := decimal.New(details.Charges.Amount, -2)
	postings := make([]Posting, 0, details.Charges.Count)
	for n := 0; n < details.Charges.Count; n++ {
		postings = append(postings, Posting{
			Value: value,
			Date:  first.AddDate(0, n, 0),
		})
	}
	return postings, nil
}
