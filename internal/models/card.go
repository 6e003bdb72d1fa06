package models

import (
	"time"

	"github.com/google/uuid"
)

// Card maps a national ID document to the payer it belongs to.
type Card struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Document  string    `gorm:"uniqueIndex"`
	PayerName string
	CreatedAt time.Time
}
