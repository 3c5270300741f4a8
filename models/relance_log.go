package models

import (
	"time"
)

// RelanceLog records one payment-reminder SMS sent (or attempted) for an
// overdue invoice.
type RelanceLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FactureID    uint      `gorm:"not null;index" json:"facture"`
	ClientID     uint      `gorm:"not null;index" json:"client"`
	Message      string    `gorm:"type:text" json:"message"`
	Statut       string    `gorm:"size:20" json:"statut"` // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"error_message"`
	SentAt       time.Time `json:"sent_at"`
}
