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

// ClientInput is the writable surface of a client. Solde is excluded: the
// balance only moves through invoicing.
type ClientInput struct {
	Nom       string `json:"nom" binding:"required"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
}

func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("id").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func GetClient(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

func CreateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if !utils.ValidatePhone(input.Telephone) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"telephone": "Numéro de téléphone invalide."}})
		return
	}

	client := models.Client{
		Nom:       input.Nom,
		Adresse:   input.Adresse,
		Telephone: input.Telephone,
	}
	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, client)
}

func UpdateClient(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if !utils.ValidatePhone(input.Telephone) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"telephone": "Numéro de téléphone invalide."}})
		return
	}

	client.Nom = input.Nom
	client.Adresse = input.Adresse
	client.Telephone = input.Telephone

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, client)
}

func DeleteClient(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if referenced(&models.Expedition{}, "client_id", client.ID) ||
		referenced(&models.Facture{}, "client_id", client.ID) ||
		referenced(&models.Reclamation{}, "client_id", client.ID) {
		utils.RespondWithError(c, http.StatusConflict,
			"Client référencé par des expéditions, factures ou réclamations")
		return
	}

	if err := config.DB.Delete(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
