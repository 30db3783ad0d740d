package analyticsController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/store"
	"lms/utils"
)

// The reporters recompute from a full scan on every call. Collections
// are small and nothing here is cached.

// UserStats reports the user role distribution (admin only).
func UserStats(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionRead, policy.Resource{Kind: policy.KindAnalytics})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		users, err := st.ListUsers("")
		if err != nil {
			log.Printf("Error fetching users: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute report!", nil)
		}

		byRole := map[string]int{}
		for _, user := range users {
			byRole[user.Role]++
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "User report computed.", fiber.Map{
			"total":  len(users),
			"byRole": byRole,
		})
	}
}

// CourseStats reports course counts by status (admin only).
func CourseStats(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionRead, policy.Resource{Kind: policy.KindAnalytics})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		courses, err := st.ListCourses(store.CourseFilter{})
		if err != nil {
			log.Printf("Error fetching courses: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute report!", nil)
		}

		byStatus := map[string]int{}
		for _, course := range courses {
			byStatus[course.Status]++
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course report computed.", fiber.Map{
			"total":    len(courses),
			"byStatus": byStatus,
		})
	}
}

// AssignmentStats reports assignment counts by status and type (admin only).
func AssignmentStats(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionRead, policy.Resource{Kind: policy.KindAnalytics})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		assignments, err := st.ListAssignments(0)
		if err != nil {
			log.Printf("Error fetching assignments: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute report!", nil)
		}

		byStatus := map[string]int{}
		byType := map[string]int{}
		for _, assignment := range assignments {
			byStatus[assignment.Status]++
			byType[assignment.Type]++
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment report computed.", fiber.Map{
			"total":    len(assignments),
			"byStatus": byStatus,
			"byType":   byType,
		})
	}
}

// FacultyStats rolls up one faculty's courses, students, assignments
// and grading backlog. Faculty may only request their own rollup.
func FacultyStats(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		decision := policy.Evaluate(actor, policy.ActionRead, policy.Resource{
			Kind:    policy.KindFacultyReport,
			OwnerID: id,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		faculty, err := st.GetUser(id)
		if err != nil || faculty.Role != models.RoleFaculty {
			return middleware.NotFoundResponse(c, "Faculty not found!")
		}

		courses, err := st.ListCourses(store.CourseFilter{FacultyID: id})
		if err != nil {
			log.Printf("Error fetching courses: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute report!", nil)
		}

		students := map[uint]bool{}
		assignmentCount := 0
		pending := 0
		graded := 0

		for _, course := range courses {
			enrollments, err := st.ListEnrollments(store.EnrollmentFilter{CourseID: course.ID})
			if err != nil {
				log.Printf("Error fetching enrollments: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute report!", nil)
			}
			for _, enrollment := range enrollments {
				students[enrollment.StudentID] = true
			}

			assignments, err := st.ListAssignments(course.ID)
			if err != nil {
				log.Printf("Error fetching assignments: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute report!", nil)
			}
			assignmentCount += len(assignments)

			for _, assignment := range assignments {
				submissions, err := st.ListSubmissions(store.SubmissionFilter{AssignmentID: assignment.ID})
				if err != nil {
					log.Printf("Error fetching submissions: %v", err)
					return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute report!", nil)
				}
				for _, submission := range submissions {
					if submission.Status == models.SubmissionGraded {
						graded++
					} else {
						pending++
					}
				}
			}
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Faculty report computed.", fiber.Map{
			"facultyId":          id,
			"courseCount":        len(courses),
			"studentCount":       len(students),
			"assignmentCount":    assignmentCount,
			"pendingSubmissions": pending,
			"gradedSubmissions":  graded,
		})
	}
}

// StudentStats rolls up one student's enrollments, assignment workload
// and average progress. Students may only request their own rollup.
func StudentStats(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		decision := policy.Evaluate(actor, policy.ActionRead, policy.Resource{
			Kind:    policy.KindStudentReport,
			OwnerID: id,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		student, err := st.GetUser(id)
		if err != nil || student.Role != models.RoleStudent {
			return middleware.NotFoundResponse(c, "Student not found!")
		}

		enrollments, err := st.ListEnrollments(store.EnrollmentFilter{StudentID: id})
		if err != nil {
			log.Printf("Error fetching enrollments: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute report!", nil)
		}

		assignmentCount := 0
		completed := 0
		progressSum := 0.0

		for _, enrollment := range enrollments {
			progressSum += enrollment.Progress

			assignments, err := st.ListAssignments(enrollment.CourseID)
			if err != nil {
				log.Printf("Error fetching assignments: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute report!", nil)
			}
			assignmentCount += len(assignments)

			for _, assignment := range assignments {
				if _, err := st.GetSubmissionByPair(assignment.ID, id); err == nil {
					completed++
				}
			}
		}

		averageProgress := 0.0
		if len(enrollments) > 0 {
			averageProgress = progressSum / float64(len(enrollments))
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Student report computed.", fiber.Map{
			"studentId":            id,
			"courseCount":          len(enrollments),
			"assignmentCount":      assignmentCount,
			"completedAssignments": completed,
			"pendingAssignments":   assignmentCount - completed,
			"averageProgress":      averageProgress,
		})
	}
}

// ActivityFeed returns the most recent audit records (admin only).
func ActivityFeed(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionRead, policy.Resource{Kind: policy.KindAnalytics})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		activities, err := st.ListActivities(50)
		if err != nil {
			log.Printf("Error fetching activities: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activity!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity fetched successfully.", activities)
	}
}
