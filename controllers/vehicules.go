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

type VehiculeInput struct {
	Matricule    string  `json:"matricule" binding:"required"`
	TypeVehicule string  `json:"type_vehicule" binding:"required"`
	Capacite     float64 `json:"capacite" binding:"gte=0"`
}

func GetVehicules(c *gin.Context) {
	var vehicules []models.Vehicule
	if err := config.DB.Order("id").Find(&vehicules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicules")
		return
	}
	c.JSON(http.StatusOK, vehicules)
}

func GetVehicule(c *gin.Context) {
	var vehicule models.Vehicule
	if err := config.DB.First(&vehicule, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, vehicule)
}

func CreateVehicule(c *gin.Context) {
	var input VehiculeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	var existing models.Vehicule
	if err := config.DB.Where("matricule = ?", input.Matricule).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"matricule": "Ce matricule existe déjà."}})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	vehicule := models.Vehicule{
		Matricule:    input.Matricule,
		TypeVehicule: input.TypeVehicule,
		Capacite:     input.Capacite,
	}
	if err := config.DB.Create(&vehicule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create vehicule")
		return
	}
	c.JSON(http.StatusCreated, vehicule)
}

func UpdateVehicule(c *gin.Context) {
	var vehicule models.Vehicule
	if err := config.DB.First(&vehicule, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input VehiculeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	if input.Matricule != vehicule.Matricule {
		var existing models.Vehicule
		if err := config.DB.Where("matricule = ?", input.Matricule).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"matricule": "Ce matricule existe déjà."}})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	vehicule.Matricule = input.Matricule
	vehicule.TypeVehicule = input.TypeVehicule
	vehicule.Capacite = input.Capacite

	if err := config.DB.Save(&vehicule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update vehicule")
		return
	}
	c.JSON(http.StatusOK, vehicule)
}

func DeleteVehicule(c *gin.Context) {
	var vehicule models.Vehicule
	if err := config.DB.First(&vehicule, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	if err := tx.Model(&models.Tournee{}).Where("vehicule_id = ?", vehicule.ID).
		Update("vehicule_id", nil).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to detach tournees")
		return
	}
	if err := tx.Delete(&vehicule).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vehicule")
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Vehicule deleted successfully"})
}
