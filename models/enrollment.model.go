package models

import (
	"gorm.io/gorm"
)

type Enrollment struct {
	gorm.Model
	StudentID uint    `json:"studentId" gorm:"index;not null"`
	CourseID  uint    `json:"courseId" gorm:"index;not null"`
	Progress  float64 `json:"progress" gorm:"default:0"`
	Grade     string  `json:"grade"`
	Status    string  `json:"status" gorm:"default:'active'"`
	Course    Course  `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
