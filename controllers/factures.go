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

type FactureInput struct {
	Client       uint            `json:"client" binding:"required"`
	DateEcheance models.Date     `json:"date_echeance" binding:"required"`
	MontantHT    decimal.Decimal `json:"montant_ht"`
	TauxTVA      *decimal.Decimal `json:"taux_tva"`
	Statut       string          `json:"statut" binding:"omitempty,oneof=BROUILLON EMISE PAYEE ANNULEE"`
	Expeditions  []uint          `json:"expeditions"`
}

func (in FactureInput) fieldErrors() map[string]string {
	errs := map[string]string{}
	if !exists(&models.Client{}, in.Client) {
		errs["client"] = "Client inexistant."
	}
	if in.MontantHT.IsNegative() {
		errs["montant_ht"] = "Le montant ne peut pas être négatif."
	}
	if in.TauxTVA != nil && in.TauxTVA.IsNegative() {
		errs["taux_tva"] = "Le taux ne peut pas être négatif."
	}
	for _, id := range in.Expeditions {
		if !exists(&models.Expedition{}, id) {
			errs["expeditions"] = "Expédition inexistante."
			break
		}
	}
	return errs
}

func annotateFactures(factures []models.Facture) {
	clients := clientNoms()
	for i := range factures {
		factures[i].ClientNom = clients[factures[i].ClientID]
		if factures[i].Expeditions == nil {
			factures[i].Expeditions = []models.FactureExpedition{}
		}
	}
}

func GetFactures(c *gin.Context) {
	query := config.DB.Preload("Expeditions").Order("id")
	if statut := c.Query("statut"); statut != "" {
		query = query.Where("statut = ?", statut)
	}
	if client := c.Query("client"); client != "" {
		query = query.Where("client_id = ?", client)
	}

	var factures []models.Facture
	if err := query.Find(&factures).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve factures")
		return
	}
	annotateFactures(factures)
	c.JSON(http.StatusOK, factures)
}

func GetFacture(c *gin.Context) {
	var facture models.Facture
	if err := config.DB.Preload("Expeditions").First(&facture, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Facture not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	one := []models.Facture{facture}
	annotateFactures(one)
	c.JSON(http.StatusOK, one[0])
}

func CreateFacture(c *gin.Context) {
	var input FactureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.fieldErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	facture := models.Facture{
		ClientID:     input.Client,
		DateEcheance: input.DateEcheance,
		MontantHT:    input.MontantHT,
		TauxTVA:      decimal.NewFromInt(19),
		Statut:       input.Statut,
	}
	if input.TauxTVA != nil {
		facture.TauxTVA = *input.TauxTVA
	}
	if facture.Statut == "" {
		facture.Statut = models.FactureBrouillon
	}

	// TVA/TTC and the invoice number come from the model's BeforeSave hook.
	tx := config.DB.Begin()
	if err := tx.Create(&facture).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create facture")
		return
	}
	for _, id := range input.Expeditions {
		link := models.FactureExpedition{FactureID: facture.ID, ExpeditionID: id}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to attach expeditions")
			return
		}
		facture.Expeditions = append(facture.Expeditions, link)
	}
	tx.Commit()

	one := []models.Facture{facture}
	annotateFactures(one)
	c.JSON(http.StatusCreated, one[0])
}

func UpdateFacture(c *gin.Context) {
	var facture models.Facture
	if err := config.DB.Preload("Expeditions").First(&facture, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Facture not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input FactureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.fieldErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	facture.ClientID = input.Client
	facture.DateEcheance = input.DateEcheance
	facture.MontantHT = input.MontantHT
	if input.TauxTVA != nil {
		facture.TauxTVA = *input.TauxTVA
	}
	if input.Statut != "" {
		facture.Statut = input.Statut
	}

	if err := config.DB.Save(&facture).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update facture")
		return
	}
	one := []models.Facture{facture}
	annotateFactures(one)
	c.JSON(http.StatusOK, one[0])
}

// DeleteFacture refuses while payments are recorded against the invoice.
func DeleteFacture(c *gin.Context) {
	var facture models.Facture
	if err := config.DB.First(&facture, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Facture not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if referenced(&models.Paiement{}, "facture_id", facture.ID) {
		utils.RespondWithError(c, http.StatusConflict, "Facture référencée par des paiements")
		return
	}

	tx := config.DB.Begin()
	if err := tx.Where("facture_id = ?", facture.ID).
		Delete(&models.FactureExpedition{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to detach expeditions")
		return
	}
	if err := tx.Model(&models.Reclamation{}).Where("facture_id = ?", facture.ID).
		Update("facture_id", nil).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to detach reclamations")
		return
	}
	if err := tx.Delete(&facture).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete facture")
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Facture deleted successfully"})
}
