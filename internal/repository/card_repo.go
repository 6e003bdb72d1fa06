package repository

import (
	"errors"

	"ledger-classifier-backend/internal/models"

	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// FindByDocument returns nil, nil when no card is registered for the document.
func (r *CardRepository) FindByDocument(document string) (*models.Card, error) {
	var card models.Card
	err := r.db.First(&card, "document = ?", document).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}
