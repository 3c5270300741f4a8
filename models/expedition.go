package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expedition struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	NumeroSuivi   string `gorm:"size:20;uniqueIndex" json:"numero_suivi"`
	ClientID      uint   `gorm:"not null;index" json:"client"`
	DestinationID uint   `gorm:"not null;index" json:"destination"`
	ServiceID     uint   `gorm:"not null;index" json:"service"`

	Poids       float64 `json:"poids"`
	Volume      float64 `json:"volume"`
	Description string  `gorm:"type:text" json:"description"`

	MontantTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"montant_total"`
	Statut       string          `gorm:"size:20;default:'EN_TRANSIT'" json:"statut"`
	DateCreation time.Time       `gorm:"autoCreateTime" json:"date_creation"`

	// Read-only display names resolved at serialization time.
	NomClient        string `gorm:"-" json:"nom_client,omitempty"`
	VilleDestination string `gorm:"-" json:"ville_destination,omitempty"`
	NomService       string `gorm:"-" json:"nom_service,omitempty"`
}

// PricingTotal computes the shipment amount from the destination base tariff
// and the service weight/volume tariffs:
//
//	montant = tarif_base + poids*tarif_poids + volume*tarif_volume
//
// Weight and volume come in as floats; they are lifted into decimals before
// any multiplication so the result is exact to the cent.
func PricingTotal(dest Destination, service TypeService, poids, volume float64) decimal.Decimal {
	coutPoids := decimal.NewFromFloat(poids).Mul(service.TarifPoids)
	coutVolume := decimal.NewFromFloat(volume).Mul(service.TarifVolume)
	return dest.TarifBase.Add(coutPoids).Add(coutVolume).Round(2)
}

// BeforeSave prices the expedition when no amount has been set yet and
// assigns the tracking number on first save. An already priced expedition is
// left alone: the stored amount is the contractual one.
func (e *Expedition) BeforeSave(tx *gorm.DB) error {
	if e.MontantTotal.IsZero() {
		var dest Destination
		if err := tx.First(&dest, e.DestinationID).Error; err != nil {
			return err
		}
		var service TypeService
		if err := tx.First(&service, e.ServiceID).Error; err != nil {
			return err
		}
		e.MontantTotal = PricingTotal(dest, service, e.Poids, e.Volume)
	}
	if e.NumeroSuivi == "" {
		e.NumeroSuivi = strings.ToUpper(uuid.NewString()[:8])
	}
	return nil
}
