package models

import (
	"time"

	"gorm.io/gorm"
)

type Assignment struct {
	gorm.Model
	CourseID    uint      `json:"courseId" gorm:"index;not null"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	MaxScore    int       `json:"maxScore"`
	Status      string    `json:"status" gorm:"default:'draft'"`
	Type        string    `json:"type" gorm:"default:'assignment'"`
}
