package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"index;not null"`
	Password     string `json:"-" gorm:"not null"`
	Email        string `json:"email" gorm:"not null"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role" gorm:"default:'student'"`
	ProfileImage string `json:"profileImage"`
	Department   string `json:"department"`
	Bio          string `json:"bio"`
}
