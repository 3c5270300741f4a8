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

type ReclamationInput struct {
	Client          uint   `json:"client" binding:"required"`
	Expedition      *uint  `json:"expedition"`
	Facture         *uint  `json:"facture"`
	TypeReclamation string `json:"type_reclamation" binding:"required,oneof=RETARD QUALITE FACTURATION AUTRE"`
	Description     string `json:"description" binding:"required"`
	Statut          string `json:"statut" binding:"omitempty,oneof=NOUVELLE EN_COURS RESOLUE ANNULEE"`
	Reponse         string `json:"reponse"`
}

func (in ReclamationInput) refErrors() map[string]string {
	errs := map[string]string{}
	if !exists(&models.Client{}, in.Client) {
		errs["client"] = "Client inexistant."
	}
	if in.Expedition != nil && !exists(&models.Expedition{}, *in.Expedition) {
		errs["expedition"] = "Expédition inexistante."
	}
	if in.Facture != nil && !exists(&models.Facture{}, *in.Facture) {
		errs["facture"] = "Facture inexistante."
	}
	return errs
}

func annotateReclamations(reclamations []models.Reclamation) {
	clients := clientNoms()
	expeditions := expeditionNumeros()
	factures := factureNumeros()
	for i := range reclamations {
		reclamations[i].ClientNom = clients[reclamations[i].ClientID]
		reclamations[i].ExpeditionNumero = deref(expeditions, reclamations[i].ExpeditionID)
		reclamations[i].FactureNumero = deref(factures, reclamations[i].FactureID)
	}
}

func GetReclamations(c *gin.Context) {
	query := config.DB.Order("id")
	if statut := c.Query("statut"); statut != "" {
		query = query.Where("statut = ?", statut)
	}
	if client := c.Query("client"); client != "" {
		query = query.Where("client_id = ?", client)
	}
	if typ := c.Query("type_reclamation"); typ != "" {
		query = query.Where("type_reclamation = ?", typ)
	}

	var reclamations []models.Reclamation
	if err := query.Find(&reclamations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reclamations")
		return
	}
	annotateReclamations(reclamations)
	c.JSON(http.StatusOK, reclamations)
}

func GetReclamation(c *gin.Context) {
	var reclamation models.Reclamation
	if err := config.DB.First(&reclamation, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reclamation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	one := []models.Reclamation{reclamation}
	annotateReclamations(one)
	c.JSON(http.StatusOK, one[0])
}

func CreateReclamation(c *gin.Context) {
	var input ReclamationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.refErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	reclamation := models.Reclamation{
		ClientID:        input.Client,
		ExpeditionID:    input.Expedition,
		FactureID:       input.Facture,
		TypeReclamation: input.TypeReclamation,
		Description:     input.Description,
		Statut:          input.Statut,
		Reponse:         input.Reponse,
	}
	if reclamation.Statut == "" {
		reclamation.Statut = models.ReclamationNouvelle
	}
	if err := config.DB.Create(&reclamation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reclamation")
		return
	}
	one := []models.Reclamation{reclamation}
	annotateReclamations(one)
	c.JSON(http.StatusCreated, one[0])
}

func UpdateReclamation(c *gin.Context) {
	var reclamation models.Reclamation
	if err := config.DB.First(&reclamation, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reclamation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input ReclamationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.refErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	reclamation.ClientID = input.Client
	reclamation.ExpeditionID = input.Expedition
	reclamation.FactureID = input.Facture
	reclamation.TypeReclamation = input.TypeReclamation
	reclamation.Description = input.Description
	reclamation.Reponse = input.Reponse
	if input.Statut != "" {
		if input.Statut == models.ReclamationResolue && reclamation.DateResolution == nil {
			now := time.Now()
			reclamation.DateResolution = &now
		}
		reclamation.Statut = input.Statut
	}

	if err := config.DB.Save(&reclamation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reclamation")
		return
	}
	one := []models.Reclamation{reclamation}
	annotateReclamations(one)
	c.JSON(http.StatusOK, one[0])
}

func DeleteReclamation(c *gin.Context) {
	result := config.DB.Delete(&models.Reclamation{}, c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete reclamation")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Reclamation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reclamation deleted successfully"})
}
