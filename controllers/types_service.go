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

type TypeServiceInput struct {
	Nom         string          `json:"nom" binding:"required"`
	TarifPoids  decimal.Decimal `json:"tarif_poids"`
	TarifVolume decimal.Decimal `json:"tarif_volume"`
}

func (in TypeServiceInput) tarifErrors() map[string]string {
	errs := map[string]string{}
	if in.TarifPoids.IsNegative() {
		errs["tarif_poids"] = "Le tarif ne peut pas être négatif."
	}
	if in.TarifVolume.IsNegative() {
		errs["tarif_volume"] = "Le tarif ne peut pas être négatif."
	}
	return errs
}

func GetTypesService(c *gin.Context) {
	var types []models.TypeService
	if err := config.DB.Order("id").Find(&types).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve types de service")
		return
	}
	c.JSON(http.StatusOK, types)
}

func GetTypeService(c *gin.Context) {
	var ts models.TypeService
	if err := config.DB.First(&ts, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Type de service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, ts)
}

func CreateTypeService(c *gin.Context) {
	var input TypeServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.tarifErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	ts := models.TypeService{
		Nom:         input.Nom,
		TarifPoids:  input.TarifPoids,
		TarifVolume: input.TarifVolume,
	}
	if err := config.DB.Create(&ts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create type de service")
		return
	}
	c.JSON(http.StatusCreated, ts)
}

func UpdateTypeService(c *gin.Context) {
	var ts models.TypeService
	if err := config.DB.First(&ts, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Type de service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input TypeServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.tarifErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	ts.Nom = input.Nom
	ts.TarifPoids = input.TarifPoids
	ts.TarifVolume = input.TarifVolume

	if err := config.DB.Save(&ts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update type de service")
		return
	}
	c.JSON(http.StatusOK, ts)
}

func DeleteTypeService(c *gin.Context) {
	var ts models.TypeService
	if err := config.DB.First(&ts, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Type de service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if referenced(&models.Expedition{}, "service_id", ts.ID) {
		utils.RespondWithError(c, http.StatusConflict, "Type de service référencé par des expéditions")
		return
	}

	if err := config.DB.Delete(&ts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete type de service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Type de service deleted successfully"})
}
