package processing

import (
	"fmt"

	"gorm.io/gorm"

	"ledger-classifier-backend/internal/models"
	"ledger-classifier-backend/internal/services/classification"
)

// Summary reports what one processing run did.
type Summary struct {
	Processed int `json:"processed"`
	Unmatched int `json:"unmatched"`
	Skipped   int `json:"skipped,omitempty"`
}

// ProcessStatements runs the generic pipeline over the pending set.
// Statements match on slug alone; matched ones are expanded into postings
// and written atomically with the processed flag. Unmatched statements
// stay pending and come back on the next run.
func (s *Service) ProcessStatements() (Summary, error) {
	var summary Summary

	pending, err := s.statements.FindUnprocessed()
	if err != nil {
		return summary, fmt.Errorf("loading pending statements: %w", err)
	}

	for i := range pending {
		st := &pending[i]

		matched, err := s.processStatement(st)
		if err != nil {
			return summary, fmt.Errorf("processing statement %s: %w", st.ID, err)
		}
		if matched {
			summary.Processed++
		} else {
			summary.Unmatched++
		}
	}

	s.logger.Info("statement run finished",
		"processed", summary.Processed, "unmatched", summary.Unmatched)
	return summary, nil
}

func (s *Service) processStatement(st *models.Statement) (bool, error) {
	candidates, err := s.rules.FindBySlug(classification.Slugify(st.Description), nil)
	if err != nil {
		return false, err
	}
	rule := classification.PickRule(candidates, nil)
	if rule == nil {
		s.logger.Debug("no rule for statement", "id", st.ID, "description", st.Description)
		return false, nil
	}

	postings, err := classification.ExpandInstallments(st)
	if err != nil {
		return false, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Statement{}).
			Where("id = ?", st.ID).
			Update("is_processed", true).Error; err != nil {
			return err
		}
		for _, p := range postings {
			rec := classification.NewRecord(p.Value, st.Description, st.OccurredAt, p.Date, rule)
			if rec == nil {
				continue
			}
			if err := tx.Create(rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ProcessBankStatements runs the bank pipeline over the pending set. Rules
// are resolved by slug, payer and amount; the payer comes from the card
// registered for the statement's document. Each match writes one record
// and flips the processed flag in the same transaction.
func (s *Service) ProcessBankStatements() (Summary, error) {
	var summary Summary

	pending, err := s.bankStatements.FindUnprocessed()
	if err != nil {
		return summary, fmt.Errorf("loading pending bank statements: %w", err)
	}

	for i := range pending {
		st := &pending[i]

		card, err := s.cards.FindByDocument(st.Document)
		if err != nil {
			return summary, fmt.Errorf("processing bank statement %s: %w", st.ID, err)
		}
		if card == nil {
			return summary, fmt.Errorf("processing bank statement %s: no card registered for document %s", st.ID, st.Document)
		}

		if !st.Kind.Valid() {
			// Unreachable through the API; ingestion rejects unknown kinds.
			s.logger.Warn("bank statement has unknown kind, skipping", "id", st.ID, "kind", st.Kind)
			summary.Skipped++
			continue
		}

		candidates, err := s.rules.FindBySlug(classification.Slugify(st.Description), &card.PayerName)
		if err != nil {
			return summary, fmt.Errorf("processing bank statement %s: %w", st.ID, err)
		}

		amount := st.Amount
		rule := classification.PickRule(candidates, &amount)
		if rule == nil {
			summary.Unmatched++
			continue
		}

		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(classification.NewBankRecord(st, rule)).Error; err != nil {
				return err
			}
			return tx.Model(&models.BankStatement{}).
				Where("id = ?", st.ID).
				Update("is_processed", true).Error
		})
		if err != nil {
			return summary, fmt.Errorf("processing bank statement %s: %w", st.ID, err)
		}
		summary.Processed++
	}

	s.logger.Info("bank statement run finished",
		"processed", summary.Processed, "unmatched", summary.Unmatched, "skipped", summary.Skipped)
	return summary, nil
}
