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

type TrackingInput struct {
	Expedition  uint   `json:"expedition" binding:"required"`
	Lieu        string `json:"lieu" binding:"required"`
	Statut      string `json:"statut" binding:"omitempty,oneof=EN_TRANSIT CENTRE_TRI LIVRAISON LIVRE ECHEC"`
	Commentaire string `json:"commentaire"`
}

func annotateTracking(steps []models.TrackingHistorique) {
	numeros := expeditionNumeros()
	for i := range steps {
		steps[i].ExpeditionNumero = numeros[steps[i].ExpeditionID]
	}
}

// GetTracking lists tracking steps, most recent first.
func GetTracking(c *gin.Context) {
	query := config.DB.Order("date_heure DESC")
	if expedition := c.Query("expedition"); expedition != "" {
		query = query.Where("expedition_id = ?", expedition)
	}

	var steps []models.TrackingHistorique
	if err := query.Find(&steps).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tracking history")
		return
	}
	annotateTracking(steps)
	c.JSON(http.StatusOK, steps)
}

func GetTrackingStep(c *gin.Context) {
	var step models.TrackingHistorique
	if err := config.DB.First(&step, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tracking step not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	one := []models.TrackingHistorique{step}
	annotateTracking(one)
	c.JSON(http.StatusOK, one[0])
}

// CreateTrackingStep records a tracking step and mirrors its status onto the
// expedition when one is provided.
func CreateTrackingStep(c *gin.Context) {
	var input TrackingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if !exists(&models.Expedition{}, input.Expedition) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"expedition": "Expédition inexistante."}})
		return
	}

	step := models.TrackingHistorique{
		ExpeditionID: input.Expedition,
		Lieu:         input.Lieu,
		Statut:       input.Statut,
		Commentaire:  input.Commentaire,
	}

	tx := config.DB.Begin()
	if err := tx.Create(&step).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tracking step")
		return
	}
	if step.Statut != "" {
		if err := tx.Model(&models.Expedition{}).Where("id = ?", step.ExpeditionID).
			Update("statut", step.Statut).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update expedition status")
			return
		}
	}
	tx.Commit()

	one := []models.TrackingHistorique{step}
	annotateTracking(one)
	c.JSON(http.StatusCreated, one[0])
}

func UpdateTrackingStep(c *gin.Context) {
	var step models.TrackingHistorique
	if err := config.DB.First(&step, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tracking step not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input TrackingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if !exists(&models.Expedition{}, input.Expedition) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"expedition": "Expédition inexistante."}})
		return
	}

	step.ExpeditionID = input.Expedition
	step.Lieu = input.Lieu
	step.Statut = input.Statut
	step.Commentaire = input.Commentaire

	if err := config.DB.Save(&step).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update tracking step")
		return
	}
	one := []models.TrackingHistorique{step}
	annotateTracking(one)
	c.JSON(http.StatusOK, one[0])
}

func DeleteTrackingStep(c *gin.Context) {
	result := config.DB.Delete(&models.TrackingHistorique{}, c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete tracking step")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Tracking step not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tracking step deleted successfully"})
}
