package models

import (
	"time"
)

// Incident is attached to an expedition or a tournee (or neither).
type Incident struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ExpeditionID *uint      `gorm:"index" json:"expedition"`
	TourneeID    *uint      `gorm:"index" json:"tournee"`
	TypeIncident string     `gorm:"size:20;not null" json:"type_incident"`
	DateIncident time.Time  `gorm:"autoCreateTime" json:"date_incident"`
	Description  string     `gorm:"type:text" json:"description"`
	Statut       string     `gorm:"size:20;default:'OUVERT'" json:"statut"`
	Resolution   string     `gorm:"type:text" json:"resolution"`
	DateResolution *time.Time `json:"date_resolution"`

	ExpeditionNumero string `gorm:"-" json:"expedition_numero,omitempty"`
	TourneeNumero    string `gorm:"-" json:"tournee_numero,omitempty"`
}
