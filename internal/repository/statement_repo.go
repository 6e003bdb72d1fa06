package repository

import (
	"ledger-classifier-backend/internal/models"

	"gorm.io/gorm"
)

type StatementRepository struct {
	db *gorm.DB
}

func NewStatementRepository(db *gorm.DB) *StatementRepository {
	return &StatementRepository{db: db}
}

// Expose DB if needed
func (r *StatementRepository) DB() *gorm.DB {
	return r.db
}

// FindUnprocessed returns the pending set in creation order.
func (r *StatementRepository) FindUnprocessed() ([]models.Statement, error) {
	var statements []models.Statement
	err := r.db.
		Where("is_processed = ?", false).
		Order("created_at ASC").
		Find(&statements).Error
	return statements, err
}

func (r *StatementRepository) GetByID(id string) (*models.Statement, error) {
	var statement models.Statement
	if err := r.db.First(&statement, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &statement, nil
}
