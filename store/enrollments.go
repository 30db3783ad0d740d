package store

import (
	"lms/models"
)

type EnrollmentFilter struct {
	CourseID  uint
	StudentID uint
	CourseIDs []uint // restrict to a course set (faculty scoping)
}

// CreateEnrollment rejects a second enrollment for the same
// (student, course) pair with ErrDuplicate.
func (s *Store) CreateEnrollment(enrollment *models.Enrollment) error {
	var existing models.Enrollment
	err := s.db.Where("student_id = ? AND course_id = ?", enrollment.StudentID, enrollment.CourseID).
		First(&existing).Error
	if err == nil {
		return ErrDuplicate
	}
	return s.db.Create(enrollment).Error
}

func (s *Store) GetEnrollment(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &enrollment, nil
}

func (s *Store) GetEnrollmentByPair(studentID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &enrollment, nil
}

func (s *Store) ListEnrollments(f EnrollmentFilter) ([]models.Enrollment, error) {
	db := s.db.Preload("Course").Order("id")
	if f.CourseID != 0 {
		db = db.Where("course_id = ?", f.CourseID)
	}
	if f.StudentID != 0 {
		db = db.Where("student_id = ?", f.StudentID)
	}
	if f.CourseIDs != nil {
		if len(f.CourseIDs) == 0 {
			return []models.Enrollment{}, nil
		}
		db = db.Where("course_id IN ?", f.CourseIDs)
	}

	var enrollments []models.Enrollment
	if err := db.Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *Store) UpdateEnrollment(id uint, fields map[string]interface{}) (*models.Enrollment, error) {
	enrollment, err := s.GetEnrollment(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return enrollment, nil
	}
	if err := s.db.Model(enrollment).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetEnrollment(id)
}

func (s *Store) DeleteEnrollment(id uint) (bool, error) {
	res := s.db.Delete(&models.Enrollment{}, id)
	return res.RowsAffected > 0, res.Error
}
