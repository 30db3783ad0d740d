package policy

// FieldSet names the model fields an actor may set on a write. Field
// names are Go struct field names, the same keys the store's partial
// updates use.
type FieldSet map[string]bool

func NewFieldSet(names ...string) FieldSet {
	fs := make(FieldSet, len(names))
	for _, n := range names {
		fs[n] = true
	}
	return fs
}

// Restrict returns a reduced copy of a patch. The input is never
// mutated. A nil set passes everything through; an empty set drops
// every field.
func Restrict(fields map[string]interface{}, settable FieldSet) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if settable == nil || settable[k] {
			out[k] = v
		}
	}
	return out
}

// Per-role settable sets. Anything not listed is silently dropped.
var (
	// every user field a non-admin may touch on their own record
	userSelfFields = NewFieldSet(
		"Username", "Password", "Email", "FirstName", "LastName",
		"ProfileImage", "Department", "Bio",
	)

	// course fields a faculty owner may set; FacultyID stays admin-only
	courseFacultyFields = NewFieldSet(
		"Title", "Description", "Status", "Category", "Semester",
		"Year", "StartDate", "EndDate",
	)

	// what faculty may change on an enrollment in an owned course
	enrollmentFacultyFields = NewFieldSet("Progress", "Grade", "Status")

	// enrollment create by a student: the course alone, never progress
	// or grade; the student id is pinned to the actor by the handler
	enrollmentStudentFields = NewFieldSet("CourseID")

	// grading fields on a submission, faculty/admin territory
	submissionGradingFields = NewFieldSet("Score", "Grade", "Feedback", "Status")

	// what a student may write on their own submission
	submissionStudentFields = NewFieldSet("Content", "FileURL")

	// faculty announcements are always course-scoped, never global
	announcementFacultyFields = NewFieldSet("Title", "Content", "CourseID")
)
