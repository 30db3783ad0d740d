package assignmentController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/store"
	"lms/utils"
	assignmentValidator "lms/validators/assignment"
)

func ListAssignments(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionList, policy.Resource{Kind: policy.KindAssignment})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		assignments, err := st.ListAssignments(utils.ParseUintQuery(c, "courseId"))
		if err != nil {
			log.Printf("Error fetching assignments: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully.", assignments)
	}
}

func GetAssignment(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		decision := policy.Evaluate(actor, policy.ActionRead, policy.Resource{Kind: policy.KindAssignment, ID: id})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		assignment, err := st.GetAssignment(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Assignment not found!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment fetched successfully.", assignment)
	}
}

func CreateAssignment(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		reqData, ok := c.Locals("validatedAssignment").(*assignmentValidator.CreateAssignmentRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		course, err := st.GetCourse(reqData.CourseID)
		if err != nil {
			return middleware.NotFoundResponse(c, "Course not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionCreate, policy.Resource{
			Kind:      policy.KindAssignment,
			FacultyID: course.FacultyID,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		status := reqData.Status
		if status == "" {
			status = models.AssignmentDraft
		}
		kind := reqData.Type
		if kind == "" {
			kind = models.TypeAssignment
		}

		assignment := models.Assignment{
			CourseID:    reqData.CourseID,
			Title:       reqData.Title,
			Description: reqData.Description,
			DueDate:     reqData.DueDate,
			MaxScore:    reqData.MaxScore,
			Status:      status,
			Type:        kind,
		}

		if err := st.CreateAssignment(&assignment); err != nil {
			log.Printf("Error saving assignment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
		}

		st.LogActivity(actor.ID, "assignment.create", map[string]interface{}{
			"assignmentId": assignment.ID,
			"courseId":     assignment.CourseID,
		})

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully.", assignment)
	}
}

func UpdateAssignment(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		assignment, err := st.GetAssignment(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Assignment not found!")
		}

		course, err := st.GetCourse(assignment.CourseID)
		if err != nil {
			return middleware.NotFoundResponse(c, "Course not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionUpdate, policy.Resource{
			Kind:      policy.KindAssignment,
			ID:        id,
			FacultyID: course.FacultyID,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		reqData, ok := c.Locals("validatedAssignmentUpdate").(*assignmentValidator.UpdateAssignmentRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		fields := policy.Restrict(reqData.Fields(), decision.Settable)

		updated, err := st.UpdateAssignment(id, fields)
		if err != nil {
			log.Printf("Error updating assignment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assignment!", nil)
		}

		st.LogActivity(actor.ID, "assignment.update", map[string]interface{}{"assignmentId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment updated successfully.", updated)
	}
}

func DeleteAssignment(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		assignment, err := st.GetAssignment(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Assignment not found!")
		}

		course, err := st.GetCourse(assignment.CourseID)
		if err != nil {
			return middleware.NotFoundResponse(c, "Course not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionDelete, policy.Resource{
			Kind:      policy.KindAssignment,
			ID:        id,
			FacultyID: course.FacultyID,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		deleted, err := st.DeleteAssignment(id)
		if err != nil {
			log.Printf("Error deleting assignment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assignment!", nil)
		}
		if !deleted {
			return middleware.NotFoundResponse(c, "Assignment not found!")
		}

		st.LogActivity(actor.ID, "assignment.delete", map[string]interface{}{"assignmentId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment deleted successfully.", nil)
	}
}
