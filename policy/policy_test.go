package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models"
)

var (
	admin    = Actor{ID: 1, Role: models.RoleAdmin}
	faculty  = Actor{ID: 2, Role: models.RoleFaculty}
	student  = Actor{ID: 3, Role: models.RoleStudent}
	faculty2 = Actor{ID: 4, Role: models.RoleFaculty}
	student2 = Actor{ID: 5, Role: models.RoleStudent}
)

func TestAdminHasEveryCapability(t *testing.T) {
	kinds := []string{
		KindUser, KindCourse, KindEnrollment, KindAssignment,
		KindSubmission, KindAnnouncement, KindAnalytics,
		KindFacultyReport, KindStudentReport,
	}
	actions := []Action{ActionRead, ActionList, ActionCreate, ActionUpdate, ActionDelete}

	for _, kind := range kinds {
		for _, action := range actions {
			d := Evaluate(admin, action, Resource{Kind: kind})
			assert.True(t, d.Allow, "%s %s", action, kind)
			assert.Nil(t, d.Settable, "%s %s", action, kind)
		}
	}
}

func TestUserCapabilities(t *testing.T) {
	// self read allowed, other read denied
	assert.True(t, Evaluate(student, ActionRead, Resource{Kind: KindUser, OwnerID: student.ID}).Allow)
	assert.False(t, Evaluate(student, ActionRead, Resource{Kind: KindUser, OwnerID: student2.ID}).Allow)
	assert.True(t, Evaluate(faculty, ActionRead, Resource{Kind: KindUser, OwnerID: faculty.ID}).Allow)
	assert.False(t, Evaluate(faculty, ActionRead, Resource{Kind: KindUser, OwnerID: admin.ID}).Allow)

	// only admins create or delete accounts
	assert.False(t, Evaluate(faculty, ActionCreate, Resource{Kind: KindUser}).Allow)
	assert.False(t, Evaluate(student, ActionCreate, Resource{Kind: KindUser}).Allow)
	assert.False(t, Evaluate(faculty, ActionDelete, Resource{Kind: KindUser, OwnerID: faculty.ID}).Allow)
	assert.False(t, Evaluate(student, ActionDelete, Resource{Kind: KindUser, OwnerID: student.ID}).Allow)

	// self update never includes the role field
	d := Evaluate(student, ActionUpdate, Resource{Kind: KindUser, OwnerID: student.ID})
	require.True(t, d.Allow)
	require.NotNil(t, d.Settable)
	assert.False(t, d.Settable["Role"])
	assert.True(t, d.Settable["Email"])
	assert.True(t, d.Settable["Password"])
}

func TestCourseCapabilities(t *testing.T) {
	owned := Resource{Kind: KindCourse, FacultyID: faculty.ID}
	foreign := Resource{Kind: KindCourse, FacultyID: faculty2.ID}

	// faculty create: allowed but the faculty reference is not settable
	d := Evaluate(faculty, ActionCreate, Resource{Kind: KindCourse})
	require.True(t, d.Allow)
	assert.False(t, d.Settable["FacultyID"])
	assert.True(t, d.Settable["Title"])

	assert.False(t, Evaluate(student, ActionCreate, Resource{Kind: KindCourse}).Allow)

	// ownership gates updates; nobody but admin deletes
	assert.True(t, Evaluate(faculty, ActionUpdate, owned).Allow)
	assert.False(t, Evaluate(faculty, ActionUpdate, foreign).Allow)
	assert.False(t, Evaluate(faculty, ActionDelete, owned).Allow)
	assert.False(t, Evaluate(student, ActionUpdate, owned).Allow)

	// everyone authenticated may browse
	assert.True(t, Evaluate(student, ActionList, Resource{Kind: KindCourse}).Allow)
	assert.True(t, Evaluate(student, ActionRead, owned).Allow)
}

func TestEnrollmentCapabilities(t *testing.T) {
	// students enroll themselves only
	assert.True(t, Evaluate(student, ActionCreate, Resource{Kind: KindEnrollment, OwnerID: student.ID}).Allow)
	assert.False(t, Evaluate(student, ActionCreate, Resource{Kind: KindEnrollment, OwnerID: student2.ID}).Allow)
	assert.False(t, Evaluate(faculty, ActionCreate, Resource{Kind: KindEnrollment, OwnerID: student.ID}).Allow)

	// faculty update on owned course, limited fields
	d := Evaluate(faculty, ActionUpdate, Resource{Kind: KindEnrollment, OwnerID: student.ID, FacultyID: faculty.ID})
	require.True(t, d.Allow)
	assert.True(t, d.Settable["Progress"])
	assert.True(t, d.Settable["Grade"])
	assert.False(t, d.Settable["CourseID"])

	assert.False(t, Evaluate(faculty, ActionUpdate, Resource{Kind: KindEnrollment, FacultyID: faculty2.ID}).Allow)
	assert.False(t, Evaluate(student, ActionUpdate, Resource{Kind: KindEnrollment, OwnerID: student.ID}).Allow)
	assert.False(t, Evaluate(faculty, ActionDelete, Resource{Kind: KindEnrollment, FacultyID: faculty.ID}).Allow)
}

func TestAssignmentCapabilities(t *testing.T) {
	owned := Resource{Kind: KindAssignment, FacultyID: faculty.ID}
	foreign := Resource{Kind: KindAssignment, FacultyID: faculty2.ID}

	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		assert.True(t, Evaluate(faculty, action, owned).Allow, string(action))
		assert.False(t, Evaluate(faculty, action, foreign).Allow, string(action))
		assert.False(t, Evaluate(student, action, owned).Allow, string(action))
	}
}

func TestSubmissionCapabilities(t *testing.T) {
	own := Resource{Kind: KindSubmission, OwnerID: student.ID, FacultyID: faculty.ID}

	// student create: self only, blocked when the assignment is closed
	assert.True(t, Evaluate(student, ActionCreate, own).Allow)
	assert.False(t, Evaluate(student, ActionCreate, Resource{Kind: KindSubmission, OwnerID: student2.ID}).Allow)
	closed := own
	closed.Closed = true
	assert.False(t, Evaluate(student, ActionCreate, closed).Allow)
	assert.False(t, Evaluate(faculty, ActionCreate, own).Allow)

	// faculty update carries only grading fields
	d := Evaluate(faculty, ActionUpdate, own)
	require.True(t, d.Allow)
	assert.True(t, d.Settable["Grade"])
	assert.True(t, d.Settable["Feedback"])
	assert.True(t, d.Settable["Status"])
	assert.False(t, d.Settable["Content"])

	// student update excludes grading fields
	d = Evaluate(student, ActionUpdate, own)
	require.True(t, d.Allow)
	assert.True(t, d.Settable["Content"])
	assert.False(t, d.Settable["Grade"])
	assert.False(t, d.Settable["Feedback"])

	// closed assignment: student update allowed with nothing settable
	d = Evaluate(student, ActionUpdate, closed)
	require.True(t, d.Allow)
	require.NotNil(t, d.Settable)
	assert.Empty(t, d.Settable)

	// reads: owning student and owning faculty, nobody else
	assert.True(t, Evaluate(student, ActionRead, own).Allow)
	assert.True(t, Evaluate(faculty, ActionRead, own).Allow)
	assert.False(t, Evaluate(student2, ActionRead, own).Allow)
	assert.False(t, Evaluate(faculty2, ActionRead, own).Allow)
}

func TestAnnouncementCapabilities(t *testing.T) {
	// faculty create on an owned course, never global
	d := Evaluate(faculty, ActionCreate, Resource{Kind: KindAnnouncement, FacultyID: faculty.ID})
	require.True(t, d.Allow)
	assert.False(t, d.Settable["IsGlobal"])
	assert.True(t, d.Settable["Title"])

	assert.False(t, Evaluate(faculty, ActionCreate, Resource{Kind: KindAnnouncement, FacultyID: faculty2.ID}).Allow)
	assert.False(t, Evaluate(student, ActionCreate, Resource{Kind: KindAnnouncement}).Allow)

	// authorship gates update/delete
	assert.True(t, Evaluate(faculty, ActionUpdate, Resource{Kind: KindAnnouncement, OwnerID: faculty.ID}).Allow)
	assert.False(t, Evaluate(faculty, ActionUpdate, Resource{Kind: KindAnnouncement, OwnerID: faculty2.ID}).Allow)
	assert.True(t, Evaluate(faculty, ActionDelete, Resource{Kind: KindAnnouncement, OwnerID: faculty.ID}).Allow)
	assert.False(t, Evaluate(faculty, ActionDelete, Resource{Kind: KindAnnouncement, OwnerID: faculty2.ID}).Allow)
}

func TestAnalyticsScoping(t *testing.T) {
	// global reports are admin only
	assert.False(t, Evaluate(faculty, ActionRead, Resource{Kind: KindAnalytics}).Allow)
	assert.False(t, Evaluate(student, ActionRead, Resource{Kind: KindAnalytics}).Allow)

	// per-identity reports are self-scoped
	assert.True(t, Evaluate(faculty, ActionRead, Resource{Kind: KindFacultyReport, OwnerID: faculty.ID}).Allow)
	assert.False(t, Evaluate(faculty, ActionRead, Resource{Kind: KindFacultyReport, OwnerID: faculty2.ID}).Allow)
	assert.True(t, Evaluate(student, ActionRead, Resource{Kind: KindStudentReport, OwnerID: student.ID}).Allow)
	assert.False(t, Evaluate(student, ActionRead, Resource{Kind: KindStudentReport, OwnerID: student2.ID}).Allow)
	// roles cannot cross report kinds
	assert.False(t, Evaluate(student, ActionRead, Resource{Kind: KindFacultyReport, OwnerID: student.ID}).Allow)
	assert.False(t, Evaluate(faculty, ActionRead, Resource{Kind: KindStudentReport, OwnerID: faculty.ID}).Allow)
}

func TestRestrict(t *testing.T) {
	in := map[string]interface{}{"Content": "x", "Grade": "A", "Feedback": "good"}

	out := Restrict(in, submissionStudentFields)
	assert.Equal(t, map[string]interface{}{"Content": "x"}, out)
	// the input is never mutated
	assert.Len(t, in, 3)

	// nil set passes everything, empty set drops everything
	assert.Len(t, Restrict(in, nil), 3)
	assert.Empty(t, Restrict(in, NewFieldSet()))
}
