package models

import (
	"time"
)

// TrackingHistorique is one step in an expedition's journey.
type TrackingHistorique struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ExpeditionID uint      `gorm:"not null;index" json:"expedition"`
	DateHeure    time.Time `gorm:"autoCreateTime" json:"date_heure"`
	Lieu         string    `gorm:"size:200" json:"lieu"`
	Statut       string    `gorm:"size:20" json:"statut"`
	Commentaire  string    `gorm:"type:text" json:"commentaire"`

	ExpeditionNumero string `gorm:"-" json:"expedition_numero,omitempty"`
}
