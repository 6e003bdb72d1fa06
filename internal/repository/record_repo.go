package repository

import (
	"ledger-classifier-backend/internal/models"

	"gorm.io/gorm"
)

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) ListRecent(limit int) ([]models.LedgerRecord, error) {
	var records []models.LedgerRecord
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
