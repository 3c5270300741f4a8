package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Facture struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	NumeroFacture string `gorm:"size:20;uniqueIndex" json:"numero_facture"`
	ClientID      uint   `gorm:"not null;index" json:"client"`
	DateEmission  Date   `json:"date_emission"`
	DateEcheance  Date   `json:"date_echeance"`

	MontantHT  decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"montant_ht"`
	TauxTVA    decimal.Decimal `gorm:"type:decimal(4,2);default:19" json:"taux_tva"`
	MontantTVA decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"montant_tva"`
	MontantTTC decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"montant_ttc"`

	Statut string `gorm:"size:20;default:'BROUILLON'" json:"statut"`

	Expeditions []FactureExpedition `gorm:"foreignKey:FactureID" json:"expeditions"`

	ClientNom string `gorm:"-" json:"client_nom,omitempty"`
}

type FactureExpedition struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	FactureID    uint `gorm:"not null;index" json:"facture"`
	ExpeditionID uint `gorm:"not null;index" json:"expedition"`
}

// ComputeTVA derives montant_tva and montant_ttc from montant_ht and
// taux_tva, rounded to the cent.
func (f *Facture) ComputeTVA() {
	f.MontantTVA = f.MontantHT.Mul(f.TauxTVA).Div(decimal.NewFromInt(100)).Round(2)
	f.MontantTTC = f.MontantHT.Add(f.MontantTVA).Round(2)
}

// BeforeSave keeps the derived amounts consistent on every write and assigns
// the invoice number on first save.
func (f *Facture) BeforeSave(tx *gorm.DB) error {
	f.ComputeTVA()
	if f.NumeroFacture == "" {
		f.NumeroFacture = "F-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if f.DateEmission.IsZero() {
		f.DateEmission = Today()
	}
	return nil
}
