package enrollmentController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/store"
	"lms/utils"
	enrollmentValidator "lms/validators/enrollment"
)

// ownedCourseIDs collects the ids of every course owned by a faculty
// actor, used to scope listings.
func ownedCourseIDs(st *store.Store, facultyID uint) ([]uint, error) {
	courses, err := st.ListCourses(store.CourseFilter{FacultyID: facultyID})
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(courses))
	for _, course := range courses {
		ids = append(ids, course.ID)
	}
	return ids, nil
}

func ListEnrollments(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionList, policy.Resource{Kind: policy.KindEnrollment})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		filter := store.EnrollmentFilter{
			CourseID:  utils.ParseUintQuery(c, "courseId"),
			StudentID: utils.ParseUintQuery(c, "studentId"),
		}

		switch actor.Role {
		case models.RoleStudent:
			// students only ever see their own enrollments
			filter.StudentID = actor.ID
		case models.RoleFaculty:
			if filter.CourseID != 0 {
				course, err := st.GetCourse(filter.CourseID)
				if err != nil {
					return middleware.NotFoundResponse(c, "Course not found!")
				}
				if course.FacultyID != actor.ID {
					return middleware.ForbiddenResponse(c)
				}
			} else {
				ids, err := ownedCourseIDs(st, actor.ID)
				if err != nil {
					log.Printf("Error fetching courses: %v", err)
					return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
				}
				filter.CourseIDs = ids
			}
		}

		enrollments, err := st.ListEnrollments(filter)
		if err != nil {
			log.Printf("Error fetching enrollments: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
	}
}

func CreateEnrollment(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.CreateEnrollmentRequest)
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

		decision := policy.Evaluate(actor, policy.ActionCreate, policy.Resource{
			Kind:    policy.KindEnrollment,
			OwnerID: studentID,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		student, err := st.GetUser(studentID)
		if err != nil || student.Role != models.RoleStudent {
			return middleware.ValidationErrorResponse(c, map[string]string{"studentId": "studentId must reference a student user!"})
		}

		if _, err := st.GetCourse(reqData.CourseID); err != nil {
			return middleware.NotFoundResponse(c, "Course not found!")
		}

		enrollment := models.Enrollment{
			StudentID: studentID,
			CourseID:  reqData.CourseID,
			Status:    models.EnrollmentActive,
		}

		if err := st.CreateEnrollment(&enrollment); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student is already enrolled in this course!", nil)
			}
			log.Printf("Error saving enrollment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}

		st.LogActivity(actor.ID, "enrollment.create", map[string]interface{}{
			"enrollmentId": enrollment.ID,
			"courseId":     enrollment.CourseID,
			"studentId":    enrollment.StudentID,
		})

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully.", enrollment)
	}
}

func UpdateEnrollment(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		enrollment, err := st.GetEnrollment(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Enrollment not found!")
		}

		course, err := st.GetCourse(enrollment.CourseID)
		if err != nil {
			return middleware.NotFoundResponse(c, "Course not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionUpdate, policy.Resource{
			Kind:      policy.KindEnrollment,
			OwnerID:   enrollment.StudentID,
			FacultyID: course.FacultyID,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		reqData, ok := c.Locals("validatedEnrollmentUpdate").(*enrollmentValidator.UpdateEnrollmentRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		fields := policy.Restrict(reqData.Fields(), decision.Settable)

		updated, err := st.UpdateEnrollment(id, fields)
		if err != nil {
			log.Printf("Error updating enrollment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
		}

		st.LogActivity(actor.ID, "enrollment.update", map[string]interface{}{"enrollmentId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully.", updated)
	}
}

func DeleteEnrollment(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		decision := policy.Evaluate(actor, policy.ActionDelete, policy.Resource{Kind: policy.KindEnrollment})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		deleted, err := st.DeleteEnrollment(id)
		if err != nil {
			log.Printf("Error deleting enrollment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete enrollment!", nil)
		}
		if !deleted {
			return middleware.NotFoundResponse(c, "Enrollment not found!")
		}

		st.LogActivity(actor.ID, "enrollment.delete", map[string]interface{}{"enrollmentId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully.", nil)
	}
}
