package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"
	"github.com/islemdzxd/delivery-management-platform/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IncidentInput struct {
	Expedition   *uint  `json:"expedition"`
	Tournee      *uint  `json:"tournee"`
	TypeIncident string `json:"type_incident" binding:"required,oneof=RETARD PERTE ENDOMMAGEMENT AUTRE"`
	Description  string `json:"description" binding:"required"`
	Statut       string `json:"statut" binding:"omitempty,oneof=OUVERT EN_COURS RESOLU CLOS"`
	Resolution   string `json:"resolution"`
}

func (in IncidentInput) refErrors() map[string]string {
	errs := map[string]string{}
	if in.Expedition != nil && !exists(&models.Expedition{}, *in.Expedition) {
		errs["expedition"] = "Expédition inexistante."
	}
	if in.Tournee != nil && !exists(&models.Tournee{}, *in.Tournee) {
		errs["tournee"] = "Tournée inexistante."
	}
	return errs
}

func annotateIncidents(incidents []models.Incident) {
	expeditions := expeditionNumeros()
	tournees := tourneeNumeros()
	for i := range incidents {
		incidents[i].ExpeditionNumero = deref(expeditions, incidents[i].ExpeditionID)
		incidents[i].TourneeNumero = deref(tournees, incidents[i].TourneeID)
	}
}

func GetIncidents(c *gin.Context) {
	query := config.DB.Order("id")
	if statut := c.Query("statut"); statut != "" {
		query = query.Where("statut = ?", statut)
	}
	if typ := c.Query("type_incident"); typ != "" {
		query = query.Where("type_incident = ?", typ)
	}
	if expedition := c.Query("expedition"); expedition != "" {
		query = query.Where("expedition_id = ?", expedition)
	}

	var incidents []models.Incident
	if err := query.Find(&incidents).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve incidents")
		return
	}
	annotateIncidents(incidents)
	c.JSON(http.StatusOK, incidents)
}

func GetIncident(c *gin.Context) {
	var incident models.Incident
	if err := config.DB.First(&incident, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Incident not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	one := []models.Incident{incident}
	annotateIncidents(one)
	c.JSON(http.StatusOK, one[0])
}

func CreateIncident(c *gin.Context) {
	var input IncidentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.refErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	incident := models.Incident{
		ExpeditionID: input.Expedition,
		TourneeID:    input.Tournee,
		TypeIncident: input.TypeIncident,
		Description:  input.Description,
		Statut:       input.Statut,
		Resolution:   input.Resolution,
	}
	if incident.Statut == "" {
		incident.Statut = models.IncidentOuvert
	}
	if err := config.DB.Create(&incident).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create incident")
		return
	}
	one := []models.Incident{incident}
	annotateIncidents(one)
	c.JSON(http.StatusCreated, one[0])
}

func UpdateIncident(c *gin.Context) {
	var incident models.Incident
	if err := config.DB.First(&incident, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Incident not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input IncidentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.refErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	incident.ExpeditionID = input.Expedition
	incident.TourneeID = input.Tournee
	incident.TypeIncident = input.TypeIncident
	incident.Description = input.Description
	incident.Resolution = input.Resolution
	if input.Statut != "" {
		// Closing an incident stamps the resolution time once.
		closed := input.Statut == models.IncidentResolu || input.Statut == models.IncidentClos
		if closed && incident.DateResolution == nil {
			now := time.Now()
			incident.DateResolution = &now
		}
		incident.Statut = input.Statut
	}

	if err := config.DB.Save(&incident).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update incident")
		return
	}
	one := []models.Incident{incident}
	annotateIncidents(one)
	c.JSON(http.StatusOK, one[0])
}

func DeleteIncident(c *gin.Context) {
	result := config.DB.Delete(&models.Incident{}, c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete incident")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Incident not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Incident deleted successfully"})
}
