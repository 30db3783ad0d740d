package store

import (
	"lms/models"
)

func (s *Store) CreateAssignment(assignment *models.Assignment) error {
	return s.db.Create(assignment).Error
}

func (s *Store) GetAssignment(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.First(&assignment, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &assignment, nil
}

func (s *Store) ListAssignments(courseID uint) ([]models.Assignment, error) {
	db := s.db.Order("id")
	if courseID != 0 {
		db = db.Where("course_id = ?", courseID)
	}
	var assignments []models.Assignment
	if err := db.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *Store) UpdateAssignment(id uint, fields map[string]interface{}) (*models.Assignment, error) {
	assignment, err := s.GetAssignment(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return assignment, nil
	}
	if err := s.db.Model(assignment).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetAssignment(id)
}

func (s *Store) DeleteAssignment(id uint) (bool, error) {
	res := s.db.Delete(&models.Assignment{}, id)
	return res.RowsAffected > 0, res.Error
}
