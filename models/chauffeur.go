package models

type Chauffeur struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Nom        string `gorm:"size:100;not null" json:"nom"`
	Permis     string `gorm:"size:50" json:"permis"`
	Disponible bool   `gorm:"default:true" json:"disponible"`
}
