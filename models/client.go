package models

import (
	"github.com/shopspring/decimal"
)

type Client struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Nom       string          `gorm:"size:100;not null" json:"nom"`
	Adresse   string          `gorm:"type:text" json:"adresse"`
	Telephone string          `gorm:"size:20" json:"telephone"`
	// Solde is only moved by invoicing, never edited directly.
	Solde decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"solde"`
}
