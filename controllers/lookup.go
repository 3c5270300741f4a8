package controllers

import (
	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"
)

// nameMap loads id -> column for a whole table. The reference tables are
// small (hundreds of rows at most); one query per list request is cheaper
// than a join per row and keeps list serialization allocation-free.
func nameMap(model interface{}, column string) map[uint]string {
	type row struct {
		ID   uint
		Name string
	}
	var rows []row
	config.DB.Model(model).Select("id, " + column + " as name").Scan(&rows)
	m := make(map[uint]string, len(rows))
	for _, r := range rows {
		m[r.ID] = r.Name
	}
	return m
}

func clientNoms() map[uint]string {
	return nameMap(&models.Client{}, "nom")
}

func destinationVilles() map[uint]string {
	return nameMap(&models.Destination{}, "ville")
}

func serviceNoms() map[uint]string {
	return nameMap(&models.TypeService{}, "nom")
}

func chauffeurNoms() map[uint]string {
	return nameMap(&models.Chauffeur{}, "nom")
}

func vehiculeMatricules() map[uint]string {
	return nameMap(&models.Vehicule{}, "matricule")
}

func expeditionNumeros() map[uint]string {
	return nameMap(&models.Expedition{}, "numero_suivi")
}

func factureNumeros() map[uint]string {
	return nameMap(&models.Facture{}, "numero_facture")
}

func tourneeNumeros() map[uint]string {
	return nameMap(&models.Tournee{}, "numero_tournee")
}

func deref(m map[uint]string, id *uint) string {
	if id == nil {
		return ""
	}
	return m[*id]
}

// exists reports whether a row with this id is present.
func exists(model interface{}, id uint) bool {
	var count int64
	config.DB.Model(model).Where("id = ?", id).Count(&count)
	return count > 0
}

// referenced counts rows of model pointing at id through column.
func referenced(model interface{}, column string, id uint) bool {
	var count int64
	config.DB.Model(model).Where(column+" = ?", id).Count(&count)
	return count > 0
}
