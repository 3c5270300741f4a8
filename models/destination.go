package models

import (
	"github.com/shopspring/decimal"
)

type Destination struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Ville     string          `gorm:"size:100;not null" json:"ville"`
	Pays      string          `gorm:"size:100;not null" json:"pays"`
	TarifBase decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tarif_base"`
}
