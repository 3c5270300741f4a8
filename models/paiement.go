package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Paiement struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	FactureID     uint            `gorm:"not null;index" json:"facture"`
	DatePaiement  Date            `json:"date_paiement"`
	Montant       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"montant"`
	ModePaiement  string          `gorm:"size:20" json:"mode_paiement"`
	Reference     string          `gorm:"size:100" json:"reference"`
	Commentaire   string          `gorm:"type:text" json:"commentaire"`

	FactureNumero string `gorm:"-" json:"facture_numero,omitempty"`
}

func (p *Paiement) BeforeCreate(tx *gorm.DB) error {
	if p.DatePaiement.IsZero() {
		p.DatePaiement = Today()
	}
	return nil
}
