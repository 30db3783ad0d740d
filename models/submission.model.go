package models

import (
	"time"

	"gorm.io/gorm"
)

type Submission struct {
	gorm.Model
	AssignmentID uint      `json:"assignmentId" gorm:"index;not null"`
	StudentID    uint      `json:"studentId" gorm:"index;not null"`
	Content      string    `json:"content"`
	FileURL      string    `json:"fileUrl"`
	SubmittedAt  time.Time `json:"submittedAt"`
	Score        *float64  `json:"score"`
	Grade        string    `json:"grade"`
	Feedback     string    `json:"feedback"`
	Status       string    `json:"status" gorm:"default:'submitted'"`
}
