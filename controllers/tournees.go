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

type TourneeInput struct {
	Date        models.Date `json:"date" binding:"required"`
	Chauffeur   *uint       `json:"chauffeur"`
	Vehicule    *uint       `json:"vehicule"`
	Statut      string      `json:"statut" binding:"omitempty,oneof=PLANIFIEE EN_COURS TERMINEE ANNULEE"`
	Commentaire string      `json:"commentaire"`
}

func (in TourneeInput) refErrors() map[string]string {
	errs := map[string]string{}
	if in.Chauffeur != nil && !exists(&models.Chauffeur{}, *in.Chauffeur) {
		errs["chauffeur"] = "Chauffeur inexistant."
	}
	if in.Vehicule != nil && !exists(&models.Vehicule{}, *in.Vehicule) {
		errs["vehicule"] = "Véhicule inexistant."
	}
	return errs
}

func annotateTournees(tournees []models.Tournee) {
	chauffeurs := chauffeurNoms()
	vehicules := vehiculeMatricules()
	for i := range tournees {
		tournees[i].ChauffeurNom = deref(chauffeurs, tournees[i].ChauffeurID)
		tournees[i].VehiculeMatricule = deref(vehicules, tournees[i].VehiculeID)
		if tournees[i].Expeditions == nil {
			tournees[i].Expeditions = []models.TourneeExpedition{}
		}
	}
}

func GetTournees(c *gin.Context) {
	query := config.DB.Preload("Expeditions").Order("id")
	if statut := c.Query("statut"); statut != "" {
		query = query.Where("statut = ?", statut)
	}
	if chauffeur := c.Query("chauffeur"); chauffeur != "" {
		query = query.Where("chauffeur_id = ?", chauffeur)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var tournees []models.Tournee
	if err := query.Find(&tournees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tournees")
		return
	}
	annotateTournees(tournees)
	c.JSON(http.StatusOK, tournees)
}

func GetTournee(c *gin.Context) {
	var tournee models.Tournee
	if err := config.DB.Preload("Expeditions").First(&tournee, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tournee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	one := []models.Tournee{tournee}
	annotateTournees(one)
	c.JSON(http.StatusOK, one[0])
}

func CreateTournee(c *gin.Context) {
	var input TourneeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.refErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	tournee := models.Tournee{
		Date:        input.Date,
		ChauffeurID: input.Chauffeur,
		VehiculeID:  input.Vehicule,
		Statut:      input.Statut,
		Commentaire: input.Commentaire,
	}
	if tournee.Statut == "" {
		tournee.Statut = models.TourneePlanifiee
	}
	if err := config.DB.Create(&tournee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tournee")
		return
	}
	one := []models.Tournee{tournee}
	annotateTournees(one)
	c.JSON(http.StatusCreated, one[0])
}

func UpdateTournee(c *gin.Context) {
	var tournee models.Tournee
	if err := config.DB.First(&tournee, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tournee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input TourneeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}
	if errs := input.refErrors(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	tournee.Date = input.Date
	tournee.ChauffeurID = input.Chauffeur
	tournee.VehiculeID = input.Vehicule
	if input.Statut != "" {
		tournee.Statut = input.Statut
	}
	tournee.Commentaire = input.Commentaire

	if err := config.DB.Save(&tournee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update tournee")
		return
	}
	one := []models.Tournee{tournee}
	annotateTournees(one)
	c.JSON(http.StatusOK, one[0])
}

func DeleteTournee(c *gin.Context) {
	var tournee models.Tournee
	if err := config.DB.First(&tournee, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tournee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	if err := tx.Where("tournee_id = ?", tournee.ID).
		Delete(&models.TourneeExpedition{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to detach expeditions")
		return
	}
	if err := tx.Where("tournee_id = ?", tournee.ID).
		Delete(&models.Incident{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete incidents")
		return
	}
	if err := tx.Delete(&tournee).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete tournee")
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Tournee deleted successfully"})
}
