package models

import (
	"gorm.io/gorm"
)

// Announcement with a nil CourseID is platform-wide.
type Announcement struct {
	gorm.Model
	CourseID *uint  `json:"courseId" gorm:"index"`
	AuthorID uint   `json:"authorId" gorm:"index;not null"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsGlobal bool   `json:"isGlobal" gorm:"default:false"`
}
