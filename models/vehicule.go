package models

type Vehicule struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Matricule    string  `gorm:"size:20;uniqueIndex;not null" json:"matricule"`
	TypeVehicule string  `gorm:"size:50" json:"type_vehicule"`
	Capacite     float64 `json:"capacite"` // in kg or m3
}
