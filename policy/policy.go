package policy

import (
	"lms/models"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource kinds
const (
	KindUser          = "user"
	KindCourse        = "course"
	KindEnrollment    = "enrollment"
	KindAssignment    = "assignment"
	KindSubmission    = "submission"
	KindAnnouncement  = "announcement"
	KindAnalytics     = "analytics"
	KindFacultyReport = "analytics:faculty"
	KindStudentReport = "analytics:student"
)

// Actor is the resolved request identity.
type Actor struct {
	ID   uint
	Role string
}

// Resource describes the target of a request in ownership terms, which
// is all the capability matrix ever needs: whose record it is, which
// faculty owns the (parent) course, and whether the parent assignment
// is closed to new work.
type Resource struct {
	Kind      string
	ID        uint
	OwnerID   uint
	FacultyID uint
	Closed    bool
}

// Decision is the evaluator's verdict. A nil Settable means every field
// may be set; an empty set means the write is allowed but carries no
// effective fields.
type Decision struct {
	Allow    bool
	Settable FieldSet
}

var deny = Decision{}

func allow(settable FieldSet) Decision {
	return Decision{Allow: true, Settable: settable}
}

// Evaluate is a pure function of (actor, action, resource). Every
// handler consults it before touching the store, so the role rules
// live here and nowhere else. Handlers additionally scope list results
// to what the actor may read.
func Evaluate(actor Actor, action Action, res Resource) Decision {
	// Admins hold every capability with no field limits.
	if actor.Role == models.RoleAdmin {
		return allow(nil)
	}

	switch res.Kind {
	case KindUser:
		return evaluateUser(actor, action, res)
	case KindCourse:
		return evaluateCourse(actor, action, res)
	case KindEnrollment:
		return evaluateEnrollment(actor, action, res)
	case KindAssignment:
		return evaluateAssignment(actor, action, res)
	case KindSubmission:
		return evaluateSubmission(actor, action, res)
	case KindAnnouncement:
		return evaluateAnnouncement(actor, action, res)
	case KindAnalytics:
		return deny
	case KindFacultyReport:
		if actor.Role == models.RoleFaculty && actor.ID == res.OwnerID {
			return allow(nil)
		}
		return deny
	case KindStudentReport:
		if actor.Role == models.RoleStudent && actor.ID == res.OwnerID {
			return allow(nil)
		}
		return deny
	}
	return deny
}

func evaluateUser(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionRead:
		if actor.ID == res.OwnerID {
			return allow(nil)
		}
	case ActionList:
		// allowed, the handler narrows the result to the actor
		return allow(nil)
	case ActionUpdate:
		if actor.ID == res.OwnerID {
			return allow(userSelfFields)
		}
	}
	return deny
}

func evaluateCourse(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionRead, ActionList:
		return allow(nil)
	case ActionCreate:
		if actor.Role == models.RoleFaculty {
			return allow(courseFacultyFields)
		}
	case ActionUpdate:
		if actor.Role == models.RoleFaculty && actor.ID == res.FacultyID {
			return allow(courseFacultyFields)
		}
	}
	return deny
}

func evaluateEnrollment(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionRead, ActionList:
		return allow(nil)
	case ActionCreate:
		if actor.Role == models.RoleStudent && actor.ID == res.OwnerID {
			return allow(enrollmentStudentFields)
		}
	case ActionUpdate:
		if actor.Role == models.RoleFaculty && actor.ID == res.FacultyID {
			return allow(enrollmentFacultyFields)
		}
	}
	return deny
}

func evaluateAssignment(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionRead, ActionList:
		return allow(nil)
	case ActionCreate, ActionUpdate, ActionDelete:
		if actor.Role == models.RoleFaculty && actor.ID == res.FacultyID {
			return allow(nil)
		}
	}
	return deny
}

func evaluateSubmission(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionRead:
		if actor.Role == models.RoleFaculty && actor.ID == res.FacultyID {
			return allow(nil)
		}
		if actor.Role == models.RoleStudent && actor.ID == res.OwnerID {
			return allow(nil)
		}
	case ActionList:
		return allow(nil)
	case ActionCreate:
		if actor.Role == models.RoleStudent && actor.ID == res.OwnerID && !res.Closed {
			return allow(submissionStudentFields)
		}
	case ActionUpdate:
		if actor.Role == models.RoleFaculty && actor.ID == res.FacultyID {
			return allow(submissionGradingFields)
		}
		if actor.Role == models.RoleStudent && actor.ID == res.OwnerID {
			if res.Closed {
				// allowed, but every field is silently dropped
				return allow(NewFieldSet())
			}
			return allow(submissionStudentFields)
		}
	}
	return deny
}

func evaluateAnnouncement(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionRead, ActionList:
		return allow(nil)
	case ActionCreate:
		if actor.Role == models.RoleFaculty && actor.ID == res.FacultyID {
			return allow(announcementFacultyFields)
		}
	case ActionUpdate:
		if actor.Role == models.RoleFaculty && actor.ID == res.OwnerID {
			return allow(announcementFacultyFields)
		}
	case ActionDelete:
		if actor.Role == models.RoleFaculty && actor.ID == res.OwnerID {
			return allow(nil)
		}
	}
	return deny
}
