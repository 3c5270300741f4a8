package models

import (
	"time"

	"github.com/islemdzxd/delivery-management-platform/utils"
	"gorm.io/gorm"
)

// User is a back-office operator account. Login is by email.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	IsStaff     bool `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool `gorm:"default:false" json:"is_superuser"`
	IsActive    bool `gorm:"default:true" json:"is_active"`

	LastLogin *time.Time `json:"last_login"`
}

// Hash the password before storing.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}
