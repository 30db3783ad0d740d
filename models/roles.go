package models

// User roles
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// Course statuses
const (
	CourseActive   = "active"
	CourseInactive = "inactive"
)

// Assignment statuses
const (
	AssignmentDraft     = "draft"
	AssignmentPublished = "published"
	AssignmentClosed    = "closed"
)

// Assignment types
const (
	TypeAssignment = "assignment"
	TypeQuiz       = "quiz"
	TypeExam       = "exam"
	TypeProject    = "project"
)

// Submission statuses
const (
	SubmissionSubmitted   = "submitted"
	SubmissionGraded      = "graded"
	SubmissionLate        = "late"
	SubmissionResubmitted = "resubmitted"
)

// Enrollment statuses
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
)
