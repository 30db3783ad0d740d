package store

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"

	"lms/models"
)

// LogActivity appends an audit record. Failures are logged and swallowed;
// audit writes never fail the request that triggered them.
func (s *Store) LogActivity(userID uint, action string, detail map[string]interface{}) {
	activity := models.Activity{
		UserID: userID,
		Action: action,
	}
	if detail != nil {
		raw, err := json.Marshal(detail)
		if err == nil {
			activity.Detail = datatypes.JSON(raw)
		}
	}
	if err := s.db.Create(&activity).Error; err != nil {
		log.Printf("Error writing activity record: %v", err)
	}
}

func (s *Store) ListActivities(limit int) ([]models.Activity, error) {
	db := s.db.Order("created_at desc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	var activities []models.Activity
	if err := db.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
