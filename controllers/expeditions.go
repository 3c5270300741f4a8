package controllers

import (
	"errors"
	"net/http"

	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"
	"github.com/islemdzxd/delivery-management-platform/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExpeditionInput struct {
	Client      uint    `json:"client" binding:"required"`
	Destination uint    `json:"destination" binding:"required"`
	Service     uint    `json:"service" binding:"required"`
	Poids       float64 `json:"poids" binding:"required,gt=0"`
	Volume      float64 `json:"volume" binding:"required,gt=0"`
	Description string  `json:"description"`
	Statut      string  `json:"statut" binding:"omitempty,oneof=EN_TRANSIT CENTRE_TRI LIVRAISON LIVRE ECHEC"`
}

func (in ExpeditionInput) refErrors() map[string]string {
	errs := map[string]string{}
	if !exists(&models.Client{}, in.Client) {
		errs["client"] = "Client inexistant."
	}
	if !exists(&models.Destination{}, in.Destination) {
		errs["destination"] = "Destination inexistante."
	}
	if !exists(&models.TypeService{}, in.Service) {
		errs["service"] = "Type de service inexistant."
	}
	return errs
}

func annotateExpeditions(expeditions []models.Expedition) {
	clients := clientNoms()
	villes := destinationVilles()
	services := serviceNoms()
	for i := range expeditions {
		expeditions[i].NomClient = clients[expeditions[i].ClientID]
		expeditions[i].VilleDestination = villes[expeditions[i].DestinationID]
		expeditions[i].NomService = services[expeditions[i].ServiceID]
	}
}

func GetExpeditions(c *gin.Context) {
	query := config.DB.Order("id")
	if statut := c.Query("statut"); statut != "" {
		query = query.Where("statut = ?", statut)
	}
	if client := c.Query("client"); client != "" {
		query = query.Where("client_id = ?", client)
	}

	var expeditions []models.Expedition
	if err := query.Find(&expeditions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expeditions")
		return
	}
	annotateExpeditions(expeditions)
	c.JSON(http.StatusOK, expeditions)
}

func GetExpedition(c *gin.Context) {
	var expedition models.Expedition
	if err := config.DB.First(&expedition, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expedition not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	one := []models.Expedition{expedition}
	annotateExpeditions(one)
	c.JSON(http.StatusOK, one[0])
}

func CreateExpedition(c *gin.Context) {
	var input ExpeditionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.refErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	expedition := models.Expedition{
		ClientID:      input.Client,
		DestinationID: input.Destination,
		ServiceID:     input.Service,
		Poids:         input.Poids,
		Volume:        input.Volume,
		Description:   input.Description,
		Statut:        input.Statut,
	}
	if expedition.Statut == "" {
		expedition.Statut = models.StatutEnTransit
	}

	// Pricing and tracking number are set by the model's BeforeSave hook.
	if err := config.DB.Create(&expedition).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expedition")
		return
	}
	one := []models.Expedition{expedition}
	annotateExpeditions(one)
	c.JSON(http.StatusCreated, one[0])
}

func UpdateExpedition(c *gin.Context) {
	var expedition models.Expedition
	if err := config.DB.First(&expedition, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expedition not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input ExpeditionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.refErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	expedition.ClientID = input.Client
	expedition.DestinationID = input.Destination
	expedition.ServiceID = input.Service
	expedition.Poids = input.Poids
	expedition.Volume = input.Volume
	expedition.Description = input.Description
	if input.Statut != "" {
		expedition.Statut = input.Statut
	}

	// The stored amount is contractual; it is not recomputed on update.
	if err := config.DB.Save(&expedition).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update expedition")
		return
	}
	one := []models.Expedition{expedition}
	annotateExpeditions(one)
	c.JSON(http.StatusOK, one[0])
}

// DeleteExpedition removes a shipment and its tracking history and
// incidents. Deletion is refused while the shipment is attached to a tournee
// or a facture.
func DeleteExpedition(c *gin.Context) {
	var expedition models.Expedition
	if err := config.DB.First(&expedition, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expedition not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if referenced(&models.TourneeExpedition{}, "expedition_id", expedition.ID) ||
		referenced(&models.FactureExpedition{}, "expedition_id", expedition.ID) {
		utils.RespondWithError(c, http.StatusConflict,
			"Expédition référencée par une tournée ou une facture")
		return
	}

	tx := config.DB.Begin()
	if err := tx.Where("expedition_id = ?", expedition.ID).
		Delete(&models.TrackingHistorique{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete tracking history")
		return
	}
	if err := tx.Where("expedition_id = ?", expedition.ID).
		Delete(&models.Incident{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete incidents")
		return
	}
	if err := tx.Model(&models.Reclamation{}).Where("expedition_id = ?", expedition.ID).
		Update("expedition_id", nil).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to detach reclamations")
		return
	}
	if err := tx.Delete(&expedition).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expedition")
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Expedition deleted successfully"})
}
