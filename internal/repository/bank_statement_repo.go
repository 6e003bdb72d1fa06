package repository

import (
	"ledger-classifier-backend/internal/models"

	"gorm.io/gorm"
)

type BankStatementRepository struct {
	db *gorm.DB
}

func NewBankStatementRepository(db *gorm.DB) *BankStatementRepository {
	return &BankStatementRepository{db: db}
}

func (r *BankStatementRepository) FindUnprocessed() ([]models.BankStatement, error) {
	var statements []models.BankStatement
	err := r.db.
		Where("is_processed = ?", false).
		Order("created_at ASC").
		Find(&statements).Error
	return statements, err
}
