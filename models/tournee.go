package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tournee is a delivery run: a driver and a vehicle assigned to a date, with
// an ordered set of expeditions attached through TourneeExpedition.
type Tournee struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	NumeroTournee string    `gorm:"size:20;uniqueIndex" json:"numero_tournee"`
	Date          Date      `json:"date"`
	ChauffeurID   *uint     `gorm:"index" json:"chauffeur"`
	VehiculeID    *uint     `gorm:"index" json:"vehicule"`
	Statut        string    `gorm:"size:20;default:'PLANIFIEE'" json:"statut"`
	Commentaire   string    `gorm:"type:text" json:"commentaire"`
	DateCreation  time.Time `gorm:"autoCreateTime" json:"date_creation"`

	Expeditions []TourneeExpedition `gorm:"foreignKey:TourneeID" json:"expeditions"`

	ChauffeurNom      string `gorm:"-" json:"chauffeur_nom,omitempty"`
	VehiculeMatricule string `gorm:"-" json:"vehicule_matricule,omitempty"`
}

type TourneeExpedition struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	TourneeID    uint `gorm:"not null;index" json:"tournee"`
	ExpeditionID uint `gorm:"not null;index" json:"expedition"`
	Ordre        int  `gorm:"default:0" json:"ordre"`
}

func (t *Tournee) BeforeCreate(tx *gorm.DB) error {
	if t.NumeroTournee == "" {
		t.NumeroTournee = "T-" + strings.ToUpper(uuid.NewString()[:6])
	}
	return nil
}
