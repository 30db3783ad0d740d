package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lms/database"
	"lms/models"
	"lms/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return store.New(db)
}

func TestCreateThenGetUser(t *testing.T) {
	st := newTestStore(t)

	user := models.User{
		Username:  "jdoe",
		Password:  "secret",
		Email:     "jdoe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleStudent,
	}
	require.NoError(t, st.CreateUser(&user))
	require.NotZero(t, user.ID)

	got, err := st.GetUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, "jdoe", got.Username)
	require.Equal(t, "jdoe@example.com", got.Email)
	require.Equal(t, models.RoleStudent, got.Role)
	require.False(t, got.CreatedAt.IsZero())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.CreateUser(&models.User{Username: "jdoe", Password: "x", Email: "a@b.c"}))
	err := st.CreateUser(&models.User{Username: "jdoe", Password: "y", Email: "d@e.f"})
	require.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUpdateUserEmptyPatchIsNoop(t *testing.T) {
	st := newTestStore(t)

	user := models.User{Username: "jdoe", Password: "x", Email: "a@b.c", FirstName: "Jane"}
	require.NoError(t, st.CreateUser(&user))

	got, err := st.UpdateUser(user.ID, map[string]interface{}{})
	require.NoError(t, err)
	require.Equal(t, "Jane", got.FirstName)
	require.Equal(t, user.UpdatedAt.Unix(), got.UpdatedAt.Unix())
}

func TestDeleteUserSemantics(t *testing.T) {
	st := newTestStore(t)

	user := models.User{Username: "jdoe", Password: "x", Email: "a@b.c"}
	require.NoError(t, st.CreateUser(&user))

	deleted, err := st.DeleteUser(user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = st.GetUser(user.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// deleting a missing id is a no-op, not an error
	deleted, err = st.DeleteUser(9999)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestUpdateUserDuplicateUsername(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.CreateUser(&models.User{Username: "alice", Password: "x", Email: "a@b.c"}))
	bob := models.User{Username: "bob", Password: "x", Email: "d@e.f"}
	require.NoError(t, st.CreateUser(&bob))

	// renaming onto a taken username is a duplicate, same as on create
	_, err := st.UpdateUser(bob.ID, map[string]interface{}{"Username": "alice"})
	require.ErrorIs(t, err, store.ErrDuplicate)

	// re-submitting the current username is not a conflict with itself
	got, err := st.UpdateUser(bob.ID, map[string]interface{}{"Username": "bob", "FirstName": "Bob"})
	require.NoError(t, err)
	require.Equal(t, "bob", got.Username)
	require.Equal(t, "Bob", got.FirstName)
}

func TestUsernameReusableAfterDelete(t *testing.T) {
	st := newTestStore(t)

	user := models.User{Username: "carol", Password: "x", Email: "c@b.c"}
	require.NoError(t, st.CreateUser(&user))

	deleted, err := st.DeleteUser(user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// a deleted account no longer reserves its username
	again := models.User{Username: "carol", Password: "y", Email: "c2@b.c"}
	require.NoError(t, st.CreateUser(&again))
	require.NotEqual(t, user.ID, again.ID)
}

func TestUpdateMissingUser(t *testing.T) {
	st := newTestStore(t)
	_, err := st.UpdateUser(42, map[string]interface{}{"FirstName": "X"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func seedCourse(t *testing.T, st *store.Store) (*models.User, *models.Course) {
	t.Helper()
	faculty := models.User{Username: "prof-" + uuid.NewString()[:8], Password: "x", Email: "p@x.y", Role: models.RoleFaculty}
	require.NoError(t, st.CreateUser(&faculty))
	course := models.Course{Title: "Algorithms", Description: "CS", FacultyID: faculty.ID, Status: models.CourseActive}
	require.NoError(t, st.CreateCourse(&course))
	return &faculty, &course
}

func TestEnrollmentDuplicatePair(t *testing.T) {
	st := newTestStore(t)
	_, course := seedCourse(t, st)

	student := models.User{Username: "stu", Password: "x", Email: "s@x.y", Role: models.RoleStudent}
	require.NoError(t, st.CreateUser(&student))

	first := models.Enrollment{StudentID: student.ID, CourseID: course.ID, Status: models.EnrollmentActive}
	require.NoError(t, st.CreateEnrollment(&first))

	dup := models.Enrollment{StudentID: student.ID, CourseID: course.ID}
	require.ErrorIs(t, st.CreateEnrollment(&dup), store.ErrDuplicate)

	// a different course for the same student is fine
	other := models.Course{Title: "Databases", Description: "CS", FacultyID: course.FacultyID, Status: models.CourseActive}
	require.NoError(t, st.CreateCourse(&other))
	second := models.Enrollment{StudentID: student.ID, CourseID: other.ID, Status: models.EnrollmentActive}
	require.NoError(t, st.CreateEnrollment(&second))
}

func TestListCoursesByStudent(t *testing.T) {
	st := newTestStore(t)
	_, course := seedCourse(t, st)

	student := models.User{Username: "stu", Password: "x", Email: "s@x.y", Role: models.RoleStudent}
	require.NoError(t, st.CreateUser(&student))
	require.NoError(t, st.CreateEnrollment(&models.Enrollment{StudentID: student.ID, CourseID: course.ID}))

	courses, err := st.ListCourses(store.CourseFilter{StudentID: student.ID})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, course.ID, courses[0].ID)

	// a student with no enrollments sees nothing
	courses, err = st.ListCourses(store.CourseFilter{StudentID: 9999})
	require.NoError(t, err)
	require.Empty(t, courses)
}

func TestSubmissionPairLookup(t *testing.T) {
	st := newTestStore(t)
	_, course := seedCourse(t, st)

	assignment := models.Assignment{CourseID: course.ID, Title: "HW1", Status: models.AssignmentPublished, Type: models.TypeAssignment}
	require.NoError(t, st.CreateAssignment(&assignment))

	student := models.User{Username: "stu", Password: "x", Email: "s@x.y", Role: models.RoleStudent}
	require.NoError(t, st.CreateUser(&student))

	_, err := st.GetSubmissionByPair(assignment.ID, student.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	submission := models.Submission{AssignmentID: assignment.ID, StudentID: student.ID, Content: "answer", Status: models.SubmissionSubmitted}
	require.NoError(t, st.CreateSubmission(&submission))

	got, err := st.GetSubmissionByPair(assignment.ID, student.ID)
	require.NoError(t, err)
	require.Equal(t, submission.ID, got.ID)
}

func TestUpdateSubmissionPartial(t *testing.T) {
	st := newTestStore(t)
	_, course := seedCourse(t, st)

	assignment := models.Assignment{CourseID: course.ID, Title: "HW1", Status: models.AssignmentPublished}
	require.NoError(t, st.CreateAssignment(&assignment))

	submission := models.Submission{AssignmentID: assignment.ID, StudentID: 1, Content: "v1", Status: models.SubmissionSubmitted}
	require.NoError(t, st.CreateSubmission(&submission))

	updated, err := st.UpdateSubmission(submission.ID, map[string]interface{}{
		"Grade":    "A",
		"Feedback": "nice work",
		"Status":   models.SubmissionGraded,
	})
	require.NoError(t, err)
	require.Equal(t, "A", updated.Grade)
	require.Equal(t, "nice work", updated.Feedback)
	require.Equal(t, models.SubmissionGraded, updated.Status)
	// untouched fields keep their values
	require.Equal(t, "v1", updated.Content)
}

func TestListEnrollmentsScoping(t *testing.T) {
	st := newTestStore(t)
	_, course := seedCourse(t, st)

	for _, name := range []string{"s1", "s2"} {
		student := models.User{Username: name, Password: "x", Email: "s@x.y", Role: models.RoleStudent}
		require.NoError(t, st.CreateUser(&student))
		require.NoError(t, st.CreateEnrollment(&models.Enrollment{StudentID: student.ID, CourseID: course.ID}))
	}

	all, err := st.ListEnrollments(store.EnrollmentFilter{CourseID: course.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)

	// empty course-set restriction yields nothing
	none, err := st.ListEnrollments(store.EnrollmentFilter{CourseIDs: []uint{}})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestActivityAppendOnly(t *testing.T) {
	st := newTestStore(t)

	st.LogActivity(1, "user.login", map[string]interface{}{"username": "jdoe"})
	st.LogActivity(1, "course.create", nil)

	activities, err := st.ListActivities(10)
	require.NoError(t, err)
	require.Len(t, activities, 2)
}
