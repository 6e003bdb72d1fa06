package repository

import (
	"ledger-classifier-backend/internal/models"

	"gorm.io/gorm"
)

type RuleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// FindBySlug returns candidate rules for a slug in creation order. A nil
// payer selects only rules with no payer filter; otherwise rules filtered
// to that payer and unfiltered rules both qualify.
func (r *RuleRepository) FindBySlug(slug string, payer *string) ([]models.ClassificationRule, error) {
	var rules []models.ClassificationRule

	query := r.db.Model(&models.ClassificationRule{})
	if payer != nil {
		query = query.Where(
			"description_slug = ? AND (check_name = ? OR check_name IS NULL)",
			slug, *payer,
		)
	} else {
		query = query.Where(
			"description_slug = ? AND check_name IS NULL",
			slug,
		)
	}

	err := query.Order("created_at ASC").Find(&rules).Error
	return rules, err
}

func (r *RuleRepository) GetAll() ([]models.ClassificationRule, error) {
	var rules []models.ClassificationRule
	err := r.db.Order("created_at ASC").Find(&rules).Error
	return rules, err
}
