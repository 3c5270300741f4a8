package models

import (
	"github.com/shopspring/decimal"
)

// TypeService is a pricing class (Standard, Express...) with per-kg and
// per-m3 tariffs.
type TypeService struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Nom         string          `gorm:"size:50;not null" json:"nom"`
	TarifPoids  decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"tarif_poids"`
	TarifVolume decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"tarif_volume"`
}
