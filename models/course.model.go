package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Title       string     `json:"title"`
	Description string     `json:"description"`
	FacultyID   uint       `json:"facultyId" gorm:"index;not null"`
	Status      string     `json:"status" gorm:"default:'active'"`
	Category    string     `json:"category"`
	Semester    string     `json:"semester"`
	Year        int        `json:"year"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}
