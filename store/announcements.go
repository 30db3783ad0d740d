package store

import (
	"lms/models"
)

func (s *Store) CreateAnnouncement(announcement *models.Announcement) error {
	return s.db.Create(announcement).Error
}

func (s *Store) GetAnnouncement(id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := s.db.First(&announcement, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &announcement, nil
}

// ListAnnouncements returns announcements for a course (newest first).
// A zero courseID returns everything.
func (s *Store) ListAnnouncements(courseID uint) ([]models.Announcement, error) {
	db := s.db.Order("created_at desc")
	if courseID != 0 {
		db = db.Where("course_id = ?", courseID)
	}
	var announcements []models.Announcement
	if err := db.Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *Store) UpdateAnnouncement(id uint, fields map[string]interface{}) (*models.Announcement, error) {
	announcement, err := s.GetAnnouncement(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return announcement, nil
	}
	if err := s.db.Model(announcement).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetAnnouncement(id)
}

func (s *Store) DeleteAnnouncement(id uint) (bool, error) {
	res := s.db.Delete(&models.Announcement{}, id)
	return res.RowsAffected > 0, res.Error
}
