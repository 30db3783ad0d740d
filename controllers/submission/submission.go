package submissionController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"lms/config"
	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/store"
	"lms/utils"
	submissionValidator "lms/validators/submission"
)

// submissionScope resolves the ownership facts the evaluator needs for
// a submission: the owning student, the faculty of the parent course
// and whether the assignment is closed.
func submissionScope(st *store.Store, submission *models.Submission) (policy.Resource, error) {
	assignment, err := st.GetAssignment(submission.AssignmentID)
	if err != nil {
		return policy.Resource{}, err
	}
	course, err := st.GetCourse(assignment.CourseID)
	if err != nil {
		return policy.Resource{}, err
	}
	return policy.Resource{
		Kind:      policy.KindSubmission,
		ID:        submission.ID,
		OwnerID:   submission.StudentID,
		FacultyID: course.FacultyID,
		Closed:    assignment.Status == models.AssignmentClosed,
	}, nil
}

func ListSubmissions(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionList, policy.Resource{Kind: policy.KindSubmission})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		filter := store.SubmissionFilter{
			AssignmentID: utils.ParseUintQuery(c, "assignmentId"),
			StudentID:    utils.ParseUintQuery(c, "studentId"),
		}

		switch actor.Role {
		case models.RoleStudent:
			filter.StudentID = actor.ID
		case models.RoleFaculty:
			if filter.AssignmentID != 0 {
				assignment, err := st.GetAssignment(filter.AssignmentID)
				if err != nil {
					return middleware.NotFoundResponse(c, "Assignment not found!")
				}
				course, err := st.GetCourse(assignment.CourseID)
				if err != nil {
					return middleware.NotFoundResponse(c, "Course not found!")
				}
				if course.FacultyID != actor.ID {
					return middleware.ForbiddenResponse(c)
				}
			} else {
				ids, err := ownedAssignmentIDs(st, actor.ID)
				if err != nil {
					log.Printf("Error fetching assignments: %v", err)
					return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
				}
				filter.AssignmentIDs = ids
			}
		}

		submissions, err := st.ListSubmissions(filter)
		if err != nil {
			log.Printf("Error fetching submissions: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully.", submissions)
	}
}

func ownedAssignmentIDs(st *store.Store, facultyID uint) ([]uint, error) {
	courses, err := st.ListCourses(store.CourseFilter{FacultyID: facultyID})
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0)
	for _, course := range courses {
		assignments, err := st.ListAssignments(course.ID)
		if err != nil {
			return nil, err
		}
		for _, assignment := range assignments {
			ids = append(ids, assignment.ID)
		}
	}
	return ids, nil
}

func GetSubmission(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		submission, err := st.GetSubmission(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Submission not found!")
		}

		res, err := submissionScope(st, submission)
		if err != nil {
			return middleware.NotFoundResponse(c, "Submission not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionRead, res)
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission fetched successfully.", submission)
	}
}

// CreateSubmission creates the student's submission for an assignment,
// or, when one already exists for the (assignment, student) pair,
// updates it in place and relabels it "resubmitted". A first submission
// past the due date is stored as "late".
func CreateSubmission(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		reqData, ok := c.Locals("validatedSubmission").(*submissionValidator.CreateSubmissionRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		studentID := reqData.StudentID
		if actor.Role == models.RoleStudent {
			if studentID != 0 && studentID != actor.ID {
				return middleware.ForbiddenResponse(c)
			}
			studentID = actor.ID
		}
		if studentID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"studentId": "studentId is required!"})
		}

		assignment, err := st.GetAssignment(reqData.AssignmentID)
		if err != nil {
			return middleware.NotFoundResponse(c, "Assignment not found!")
		}
		course, err := st.GetCourse(assignment.CourseID)
		if err != nil {
			return middleware.NotFoundResponse(c, "Course not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionCreate, policy.Resource{
			Kind:      policy.KindSubmission,
			OwnerID:   studentID,
			FacultyID: course.FacultyID,
			Closed:    assignment.Status == models.AssignmentClosed,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		now := time.Now()

		// Repeat submission for the same pair is an update, not an error.
		if existing, err := st.GetSubmissionByPair(reqData.AssignmentID, studentID); err == nil {
			updated, err := st.UpdateSubmission(existing.ID, map[string]interface{}{
				"Content":     reqData.Content,
				"FileURL":     reqData.FileURL,
				"Status":      models.SubmissionResubmitted,
				"SubmittedAt": now,
			})
			if err != nil {
				log.Printf("Error updating submission: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit!", nil)
			}

			st.LogActivity(actor.ID, "submission.resubmit", map[string]interface{}{"submissionId": existing.ID})

			return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission updated successfully.", updated)
		}

		status := models.SubmissionSubmitted
		if now.After(assignment.DueDate) {
			status = models.SubmissionLate
		}

		submission := models.Submission{
			AssignmentID: reqData.AssignmentID,
			StudentID:    studentID,
			Content:      reqData.Content,
			FileURL:      reqData.FileURL,
			SubmittedAt:  now,
			Status:       status,
		}

		if err := st.CreateSubmission(&submission); err != nil {
			log.Printf("Error saving submission: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit!", nil)
		}

		st.LogActivity(actor.ID, "submission.create", map[string]interface{}{
			"submissionId": submission.ID,
			"assignmentId": submission.AssignmentID,
		})

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Submission created successfully.", submission)
	}
}

func UpdateSubmission(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		submission, err := st.GetSubmission(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Submission not found!")
		}

		res, err := submissionScope(st, submission)
		if err != nil {
			return middleware.NotFoundResponse(c, "Submission not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionUpdate, res)
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		reqData, ok := c.Locals("validatedSubmissionUpdate").(*submissionValidator.UpdateSubmissionRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		// Disallowed fields are dropped, not rejected; a student writing
		// grade/feedback gets a success with those fields untouched.
		fields := policy.Restrict(reqData.Fields(), decision.Settable)

		updated, err := st.UpdateSubmission(id, fields)
		if err != nil {
			log.Printf("Error updating submission: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update submission!", nil)
		}

		st.LogActivity(actor.ID, "submission.update", map[string]interface{}{"submissionId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission updated successfully.", updated)
	}
}

// UploadSubmissionFile attaches an uploaded file to a submission.
func UploadSubmissionFile(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		submission, err := st.GetSubmission(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Submission not found!")
		}

		res, err := submissionScope(st, submission)
		if err != nil {
			return middleware.NotFoundResponse(c, "Submission not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionUpdate, res)
		if !decision.Allow || (decision.Settable != nil && !decision.Settable["FileURL"]) {
			return middleware.ForbiddenResponse(c)
		}

		file, err := c.FormFile("file")
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"file": "file is required!"})
		}

		fileName, err := utils.SaveUploadedFile(file, cfg.UploadDir)
		if err != nil {
			log.Printf("Error saving uploaded file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
		}

		updated, err := st.UpdateSubmission(id, map[string]interface{}{
			"FileURL": utils.GetFileURL(fileName),
		})
		if err != nil {
			log.Printf("Error updating submission: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update submission!", nil)
		}

		st.LogActivity(actor.ID, "submission.upload", map[string]interface{}{"submissionId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully.", updated)
	}
}
