package courseController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/store"
	"lms/utils"
	courseValidator "lms/validators/course"
)

func ListCourses(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionList, policy.Resource{Kind: policy.KindCourse})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		filter := store.CourseFilter{
			FacultyID: utils.ParseUintQuery(c, "facultyId"),
			StudentID: utils.ParseUintQuery(c, "studentId"),
		}

		courses, err := st.ListCourses(filter)
		if err != nil {
			log.Printf("Error fetching courses: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
	}
}

func GetCourse(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		decision := policy.Evaluate(actor, policy.ActionRead, policy.Resource{Kind: policy.KindCourse, ID: id})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		course, err := st.GetCourse(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Course not found!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
	}
}

func CreateCourse(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionCreate, policy.Resource{Kind: policy.KindCourse})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		// Faculty always own what they create; admins assign any faculty.
		facultyID := reqData.FacultyID
		if actor.Role == models.RoleFaculty {
			facultyID = actor.ID
		}

		faculty, err := st.GetUser(facultyID)
		if err != nil || faculty.Role != models.RoleFaculty {
			return middleware.ValidationErrorResponse(c, map[string]string{"facultyId": "facultyId must reference a faculty user!"})
		}

		status := reqData.Status
		if status == "" {
			status = models.CourseActive
		}

		course := models.Course{
			Title:       reqData.Title,
			Description: reqData.Description,
			FacultyID:   facultyID,
			Status:      status,
			Category:    reqData.Category,
			Semester:    reqData.Semester,
			Year:        reqData.Year,
			StartDate:   reqData.StartDate,
			EndDate:     reqData.EndDate,
		}

		if err := st.CreateCourse(&course); err != nil {
			log.Printf("Error saving course: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
		}

		st.LogActivity(actor.ID, "course.create", map[string]interface{}{"courseId": course.ID})

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
	}
}

func UpdateCourse(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		course, err := st.GetCourse(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Course not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionUpdate, policy.Resource{
			Kind:      policy.KindCourse,
			ID:        id,
			FacultyID: course.FacultyID,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		fields := policy.Restrict(reqData.Fields(), decision.Settable)

		updated, err := st.UpdateCourse(id, fields)
		if err != nil {
			log.Printf("Error updating course: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}

		st.LogActivity(actor.ID, "course.update", map[string]interface{}{"courseId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", updated)
	}
}

func DeleteCourse(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		decision := policy.Evaluate(actor, policy.ActionDelete, policy.Resource{Kind: policy.KindCourse, ID: id})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		deleted, err := st.DeleteCourse(id)
		if err != nil {
			log.Printf("Error deleting course: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
		if !deleted {
			return middleware.NotFoundResponse(c, "Course not found!")
		}

		st.LogActivity(actor.ID, "course.delete", map[string]interface{}{"courseId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
	}
}
