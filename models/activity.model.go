package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity is an append-only audit record. It is never updated or
// deleted and is read only by the analytics reporters.
type Activity struct {
	gorm.Model
	UserID uint           `json:"userId" gorm:"index"`
	Action string         `json:"action" gorm:"not null"`
	Detail datatypes.JSON `json:"detail"`
}
