package classification

import (
	"github.com/shopspring/decimal"

	"ledger-classifier-backend/internal/models"
)

const (
	OpLessThan    = "<"
	OpGreaterThan = ">"
	OpEqual       = "="
)

// ValidOperator reports whether op can be stored on a rule. The empty
// operator means the rule never gates on amount.
func ValidOperator(op string) bool {
	switch op {
	case "", OpLessThan, OpGreaterThan, OpEqual:
		return true
	}
	return false
}

// PickRule selects the winning rule from candidates already filtered by
// slug and payer, in creation order. With no amount the first candidate
// wins outright.
//
// With an amount, operators are tried in fixed priority and each pass
// short-circuits: a "<" rule fires when the amount is below its threshold
// (check_value > amount), a ">" rule when the amount is above it
// (check_value < amount), then "=" on equality. Returns nil when nothing
// fires; that is a normal outcome, not an error.
func PickRule(candidates []models.ClassificationRule, amount *decimal.Decimal) *models.ClassificationRule {
	if len(candidates) == 0 {
		return nil
	}
	if amount == nil {
		return &candidates[0]
	}

	for i := range candidates {
		r := &candidates[i]
		if r.CheckValueOperator == OpLessThan && r.CheckValue.Valid &&
			r.CheckValue.Decimal.GreaterThan(*amount) {
			return r
		}
	}
	for i := range candidates {
		r := &candidates[i]
		if r.CheckValueOperator == OpGreaterThan && r.CheckValue.Valid &&
			r.CheckValue.Decimal.LessThan(*amount) {
			return r
		}
	}
	for i := range candidates {
		r := &candidates[i]
		if r.CheckValueOperator == OpEqual && r.CheckValue.Valid &&
			r.CheckValue.Decimal.Equal(*amount) {
			return r
		}
	}

	return nil
}
