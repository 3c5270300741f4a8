package controllers

import (
	"net/http"
	"time"

	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"
	"github.com/islemdzxd/delivery-management-platform/utils"

	"github.com/gin-gonic/gin"
)

type TopClient struct {
	ID            uint   `json:"id"`
	Nom           string `json:"nom"`
	NbExpeditions int    `json:"nb_expeditions"`
}

type TopDestination struct {
	ID            uint   `json:"id"`
	Ville         string `json:"ville"`
	Pays          string `json:"pays"`
	NbExpeditions int    `json:"nb_expeditions"`
}

type TrendPoint struct {
	Mois        string `json:"mois"`
	Expeditions int    `json:"expeditions"`
	MoisComplet string `json:"mois_complet"`
}

type StatusCount struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Statut string `json:"statut"`
}

// GetDashboard aggregates the figures for the analytics dashboard.
func GetDashboard(c *gin.Context) {
	now := time.Now()
	last30Days := now.AddDate(0, 0, -30)

	var total, enCours, livrees, ceMois int64
	config.DB.Model(&models.Expedition{}).Count(&total)
	config.DB.Model(&models.Expedition{}).Where("statut <> ?", models.StatutLivre).Count(&enCours)
	config.DB.Model(&models.Expedition{}).Where("statut = ?", models.StatutLivre).Count(&livrees)
	config.DB.Model(&models.Expedition{}).Where("date_creation >= ?", last30Days).Count(&ceMois)

	var chiffreAffaires float64
	config.DB.Model(&models.Expedition{}).Where("statut = ?", models.StatutLivre).
		Select("COALESCE(SUM(montant_total), 0)").Scan(&chiffreAffaires)

	var facturesImpayees float64
	config.DB.Model(&models.Facture{}).Where("statut <> ?", models.FacturePayee).
		Select("COALESCE(SUM(montant_ttc), 0)").Scan(&facturesImpayees)

	var topClients []TopClient
	if err := config.DB.Raw(`
		SELECT c.id, c.nom, COUNT(e.id) AS nb_expeditions
		FROM clients c
		LEFT JOIN expeditions e ON e.client_id = c.id
		GROUP BY c.id, c.nom
		ORDER BY nb_expeditions DESC, c.id
		LIMIT 5
	`).Scan(&topClients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute top clients")
		return
	}

	var topDestinations []TopDestination
	if err := config.DB.Raw(`
		SELECT d.id, d.ville, d.pays, COUNT(e.id) AS nb_expeditions
		FROM destinations d
		LEFT JOIN expeditions e ON e.destination_id = d.id
		GROUP BY d.id, d.ville, d.pays
		ORDER BY nb_expeditions DESC, d.id
		LIMIT 5
	`).Scan(&topDestinations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute top destinations")
		return
	}
	if topClients == nil {
		topClients = []TopClient{}
	}
	if topDestinations == nil {
		topDestinations = []TopDestination{}
	}

	var incidentsOuverts int64
	config.DB.Model(&models.Incident{}).Where("statut <> ?", models.IncidentClos).Count(&incidentsOuverts)

	var reclamationsNouvelles int64
	config.DB.Model(&models.Reclamation{}).Where("statut = ?", models.ReclamationNouvelle).Count(&reclamationsNouvelles)

	c.JSON(http.StatusOK, gin.H{
		"expeditions": gin.H{
			"total":    total,
			"en_cours": enCours,
			"livrees":  livrees,
			"ce_mois":  ceMois,
		},
		"financier": gin.H{
			"chiffre_affaires":  chiffreAffaires,
			"factures_impayees": facturesImpayees,
		},
		"top_clients":            topClients,
		"top_destinations":       topDestinations,
		"incidents_ouverts":      incidentsOuverts,
		"reclamations_nouvelles": reclamationsNouvelles,
	})
}

// GetExpeditionTrend returns shipment counts for the last six calendar
// months. Bucketing happens in Go rather than SQL so the query stays
// portable across postgres and sqlite.
func GetExpeditionTrend(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -6, 0)

	var dates []time.Time
	if err := config.DB.Model(&models.Expedition{}).Where("date_creation >= ?", start).
		Pluck("date_creation", &dates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expedition dates")
		return
	}

	c.JSON(http.StatusOK, BucketTrend(dates, now))
}

// BucketTrend groups creation timestamps into the six calendar months
// preceding now, oldest first.
func BucketTrend(dates []time.Time, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, 6)
	counts := make(map[string]int)
	for _, d := range dates {
		counts[d.Format("2006-01")]++
	}
	for i := 6; i >= 1; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		points = append(points, TrendPoint{
			Mois:        month.Format("Jan"),
			Expeditions: counts[month.Format("2006-01")],
			MoisComplet: month.Format("January 2006"),
		})
	}
	return points
}

// GetStatusDistribution returns shipment counts grouped by status, most
// frequent first, zero-count statuses omitted.
func GetStatusDistribution(c *gin.Context) {
	type row struct {
		Statut string
		Count  int
	}
	var rows []row
	if err := config.DB.Model(&models.Expedition{}).
		Select("statut, COUNT(*) as count").
		Group("statut").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute status distribution")
		return
	}

	data := make([]StatusCount, 0, len(rows))
	for _, r := range rows {
		data = append(data, StatusCount{
			Name:   models.ExpeditionStatusInfo(r.Statut).Label,
			Value:  r.Count,
			Statut: r.Statut,
		})
	}
	c.JSON(http.StatusOK, data)
}
