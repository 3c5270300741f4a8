package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reclamation struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	NumeroReclamation string    `gorm:"size:20;uniqueIndex" json:"numero_reclamation"`
	ClientID          uint      `gorm:"not null;index" json:"client"`
	ExpeditionID      *uint     `gorm:"index" json:"expedition"`
	FactureID         *uint     `gorm:"index" json:"facture"`
	TypeReclamation   string    `gorm:"size:20;not null" json:"type_reclamation"`
	DateReclamation   time.Time `gorm:"autoCreateTime" json:"date_reclamation"`
	Description       string    `gorm:"type:text" json:"description"`
	Statut            string    `gorm:"size:20;default:'NOUVELLE'" json:"statut"`
	Reponse           string    `gorm:"type:text" json:"reponse"`
	DateResolution    *time.Time `json:"date_resolution"`

	ClientNom        string `gorm:"-" json:"client_nom,omitempty"`
	ExpeditionNumero string `gorm:"-" json:"expedition_numero,omitempty"`
	FactureNumero    string `gorm:"-" json:"facture_numero,omitempty"`
}

func (r *Reclamation) BeforeCreate(tx *gorm.DB) error {
	if r.NumeroReclamation == "" {
		r.NumeroReclamation = "R-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return nil
}
