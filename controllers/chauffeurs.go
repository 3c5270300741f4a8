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

type ChauffeurInput struct {
	Nom        string `json:"nom" binding:"required"`
	Permis     string `json:"permis" binding:"required"`
	Disponible *bool  `json:"disponible"`
}

func GetChauffeurs(c *gin.Context) {
	var chauffeurs []models.Chauffeur
	if err := config.DB.Order("id").Find(&chauffeurs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve chauffeurs")
		return
	}
	c.JSON(http.StatusOK, chauffeurs)
}

func GetChauffeur(c *gin.Context) {
	var chauffeur models.Chauffeur
	if err := config.DB.First(&chauffeur, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Chauffeur not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, chauffeur)
}

func CreateChauffeur(c *gin.Context) {
	var input ChauffeurInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	chauffeur := models.Chauffeur{
		Nom:        input.Nom,
		Permis:     input.Permis,
		Disponible: true,
	}
	if input.Disponible != nil {
		chauffeur.Disponible = *input.Disponible
	}
	if err := config.DB.Create(&chauffeur).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create chauffeur")
		return
	}
	c.JSON(http.StatusCreated, chauffeur)
}

func UpdateChauffeur(c *gin.Context) {
	var chauffeur models.Chauffeur
	if err := config.DB.First(&chauffeur, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Chauffeur not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input ChauffeurInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	chauffeur.Nom = input.Nom
	chauffeur.Permis = input.Permis
	if input.Disponible != nil {
		chauffeur.Disponible = *input.Disponible
	}

	if err := config.DB.Save(&chauffeur).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update chauffeur")
		return
	}
	c.JSON(http.StatusOK, chauffeur)
}

// DeleteChauffeur removes a driver. Tournees keep existing with a null
// driver, so no referential conflict applies here.
func DeleteChauffeur(c *gin.Context) {
	var chauffeur models.Chauffeur
	if err := config.DB.First(&chauffeur, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Chauffeur not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	if err := tx.Model(&models.Tournee{}).Where("chauffeur_id = ?", chauffeur.ID).
		Update("chauffeur_id", nil).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to detach tournees")
		return
	}
	if err := tx.Delete(&chauffeur).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete chauffeur")
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Chauffeur deleted successfully"})
}
