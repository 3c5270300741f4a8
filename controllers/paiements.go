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

type PaiementInput struct {
	Facture      uint            `json:"facture" binding:"required"`
	Montant      decimal.Decimal `json:"montant"`
	ModePaiement string          `json:"mode_paiement" binding:"required,oneof=ESPECES CHEQUE VIREMENT CARTE"`
	Reference    string          `json:"reference"`
	Commentaire  string          `json:"commentaire"`
}

func (in PaiementInput) fieldErrors() map[string]string {
	errs := map[string]string{}
	if !exists(&models.Facture{}, in.Facture) {
		errs["facture"] = "Facture inexistante."
	}
	if !in.Montant.IsPositive() {
		errs["montant"] = "Le montant doit être positif."
	}
	return errs
}

func annotatePaiements(paiements []models.Paiement) {
	numeros := factureNumeros()
	for i := range paiements {
		paiements[i].FactureNumero = numeros[paiements[i].FactureID]
	}
}

func GetPaiements(c *gin.Context) {
	query := config.DB.Order("id")
	if facture := c.Query("facture"); facture != "" {
		query = query.Where("facture_id = ?", facture)
	}

	var paiements []models.Paiement
	if err := query.Find(&paiements).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve paiements")
		return
	}
	annotatePaiements(paiements)
	c.JSON(http.StatusOK, paiements)
}

func GetPaiement(c *gin.Context) {
	var paiement models.Paiement
	if err := config.DB.First(&paiement, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Paiement not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	one := []models.Paiement{paiement}
	annotatePaiements(one)
	c.JSON(http.StatusOK, one[0])
}

// CreatePaiement records a payment. When accumulated payments cover the
// invoice total, the invoice flips to PAYEE and the client balance is
// credited.
func CreatePaiement(c *gin.Context) {
	var input PaiementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.fieldErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	paiement := models.Paiement{
		FactureID:    input.Facture,
		Montant:      input.Montant,
		ModePaiement: input.ModePaiement,
		Reference:    input.Reference,
		Commentaire:  input.Commentaire,
	}

	tx := config.DB.Begin()
	if err := tx.Create(&paiement).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create paiement")
		return
	}
	if err := settleFacture(tx, input.Facture); err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to settle facture")
		return
	}
	tx.Commit()

	one := []models.Paiement{paiement}
	annotatePaiements(one)
	c.JSON(http.StatusCreated, one[0])
}

// settleFacture marks the invoice paid once payments reach montant_ttc, and
// moves the client balance accordingly. This is the only place a client
// balance changes.
func settleFacture(tx *gorm.DB, factureID uint) error {
	var facture models.Facture
	if err := tx.First(&facture, factureID).Error; err != nil {
		return err
	}
	if facture.Statut == models.FacturePayee {
		return nil
	}

	var paiements []models.Paiement
	if err := tx.Where("facture_id = ?", factureID).Find(&paiements).Error; err != nil {
		return err
	}
	total := decimal.Zero
	for _, p := range paiements {
		total = total.Add(p.Montant)
	}
	if total.LessThan(facture.MontantTTC) {
		return nil
	}

	if err := tx.Model(&facture).Update("statut", models.FacturePayee).Error; err != nil {
		return err
	}
	return tx.Model(&models.Client{}).Where("id = ?", facture.ClientID).
		Update("solde", gorm.Expr("solde + ?", facture.MontantTTC)).Error
}

func UpdatePaiement(c *gin.Context) {
	var paiement models.Paiement
	if err := config.DB.First(&paiement, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Paiement not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input PaiementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.fieldErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	paiement.FactureID = input.Facture
	paiement.Montant = input.Montant
	paiement.ModePaiement = input.ModePaiement
	paiement.Reference = input.Reference
	paiement.Commentaire = input.Commentaire

	if err := config.DB.Save(&paiement).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update paiement")
		return
	}
	one := []models.Paiement{paiement}
	annotatePaiements(one)
	c.JSON(http.StatusOK, one[0])
}

func DeletePaiement(c *gin.Context) {
	result := config.DB.Delete(&models.Paiement{}, c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete paiement")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Paiement not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Paiement deleted successfully"})
}
