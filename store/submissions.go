package store

import (
	"lms/models"
)

type SubmissionFilter struct {
	AssignmentID  uint
	StudentID     uint
	AssignmentIDs []uint // restrict to an assignment set (faculty scoping)
}

func (s *Store) CreateSubmission(submission *models.Submission) error {
	return s.db.Create(submission).Error
}

func (s *Store) GetSubmission(id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.First(&submission, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &submission, nil
}

// GetSubmissionByPair finds the single submission a student has for an
// assignment, if any. Callers use it to turn a repeat create into a
// resubmission.
func (s *Store) GetSubmissionByPair(assignmentID, studentID uint) (*models.Submission, error) {
	var submission models.Submission
	err := s.db.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&submission).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &submission, nil
}

func (s *Store) ListSubmissions(f SubmissionFilter) ([]models.Submission, error) {
	db := s.db.Order("id")
	if f.AssignmentID != 0 {
		db = db.Where("assignment_id = ?", f.AssignmentID)
	}
	if f.StudentID != 0 {
		db = db.Where("student_id = ?", f.StudentID)
	}
	if f.AssignmentIDs != nil {
		if len(f.AssignmentIDs) == 0 {
			return []models.Submission{}, nil
		}
		db = db.Where("assignment_id IN ?", f.AssignmentIDs)
	}

	var submissions []models.Submission
	if err := db.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *Store) UpdateSubmission(id uint, fields map[string]interface{}) (*models.Submission, error) {
	submission, err := s.GetSubmission(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return submission, nil
	}
	if err := s.db.Model(submission).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetSubmission(id)
}
