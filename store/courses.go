package store

import (
	"lms/models"
)

// CourseFilter narrows a course scan. Zero values are ignored.
type CourseFilter struct {
	FacultyID uint
	StudentID uint // courses the student is enrolled in
}

func (s *Store) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

func (s *Store) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &course, nil
}

func (s *Store) ListCourses(f CourseFilter) ([]models.Course, error) {
	db := s.db.Order("id")
	if f.FacultyID != 0 {
		db = db.Where("faculty_id = ?", f.FacultyID)
	}
	if f.StudentID != 0 {
		var enrollments []models.Enrollment
		if err := s.db.Where("student_id = ?", f.StudentID).Find(&enrollments).Error; err != nil {
			return nil, err
		}
		ids := make([]uint, 0, len(enrollments))
		for _, e := range enrollments {
			ids = append(ids, e.CourseID)
		}
		if len(ids) == 0 {
			return []models.Course{}, nil
		}
		db = db.Where("id IN ?", ids)
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Store) UpdateCourse(id uint, fields map[string]interface{}) (*models.Course, error) {
	course, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return course, nil
	}
	if err := s.db.Model(course).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetCourse(id)
}

func (s *Store) DeleteCourse(id uint) (bool, error) {
	res := s.db.Delete(&models.Course{}, id)
	return res.RowsAffected > 0, res.Error
}
