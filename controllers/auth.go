package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"
	"github.com/islemdzxd/delivery-management-platform/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates by email and returns the session identity fields the
// front end persists (id, username, email). A JWT is included for clients
// that want header auth; the flag-based session does not require it.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email et mot de passe requis")
		return
	}

	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Email et mot de passe requis")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", input.Email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Email ou mot de passe incorrect")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email ou mot de passe incorrect")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	token, _ := utils.GenerateToken(user.ID, user.Email)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"is_staff":     user.IsStaff,
			"is_superuser": user.IsSuperuser,
		},
	})
}
