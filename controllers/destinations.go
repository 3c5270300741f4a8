package controllers

import (
	"errors"
	"net/http"

	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"
	"github.com/islemdzxd/delivery-management-platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DestinationInput struct {
	Ville     string          `json:"ville" binding:"required"`
	Pays      string          `json:"pays" binding:"required"`
	TarifBase decimal.Decimal `json:"tarif_base"`
}

func GetDestinations(c *gin.Context) {
	var destinations []models.Destination
	if err := config.DB.Order("id").Find(&destinations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve destinations")
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func GetDestination(c *gin.Context) {
	var destination models.Destination
	if err := config.DB.First(&destination, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Destination not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, destination)
}

func CreateDestination(c *gin.Context) {
	var input DestinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if input.TarifBase.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"tarif_base": "Le tarif ne peut pas être négatif."}})
		return
	}

	destination := models.Destination{
		Ville:     input.Ville,
		Pays:      input.Pays,
		TarifBase: input.TarifBase,
	}
	if err := config.DB.Create(&destination).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create destination")
		return
	}
	c.JSON(http.StatusCreated, destination)
}

func UpdateDestination(c *gin.Context) {
	var destination models.Destination
	if err := config.DB.First(&destination, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Destination not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input DestinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if input.TarifBase.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"tarif_base": "Le tarif ne peut pas être négatif."}})
		return
	}

	destination.Ville = input.Ville
	destination.Pays = input.Pays
	destination.TarifBase = input.TarifBase

	if err := config.DB.Save(&destination).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update destination")
		return
	}
	c.JSON(http.StatusOK, destination)
}

// DeleteDestination refuses to remove a destination still used by
// expeditions: pricing history depends on it.
func DeleteDestination(c *gin.Context) {
	var destination models.Destination
	if err := config.DB.First(&destination, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Destination not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if referenced(&models.Expedition{}, "destination_id", destination.ID) {
		utils.RespondWithError(c, http.StatusConflict, "Destination référencée par des expéditions")
		return
	}

	if err := config.DB.Delete(&destination).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete destination")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted successfully"})
}
