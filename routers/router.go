package routers

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	"lms/routers/analyticsRoutes"
	"lms/routers/announcementRoutes"
	"lms/routers/assignmentRoutes"
	"lms/routers/authRoutes"
	"lms/routers/courseRoutes"
	"lms/routers/enrollmentRoutes"
	"lms/routers/submissionRoutes"
	"lms/routers/userRoutes"
	"lms/store"
)

// Setup mounts the full REST surface under /api.
func Setup(app *fiber.App, st *store.Store, cfg *config.Config) {
	api := app.Group("/api")

	authRoutes.SetupAuthRoutes(api, st, cfg)
	userRoutes.SetupUserRoutes(api, st, cfg)
	courseRoutes.SetupCourseRoutes(api, st, cfg)
	enrollmentRoutes.SetupEnrollmentRoutes(api, st, cfg)
	assignmentRoutes.SetupAssignmentRoutes(api, st, cfg)
	submissionRoutes.SetupSubmissionRoutes(api, st, cfg)
	announcementRoutes.SetupAnnouncementRoutes(api, st, cfg)
	analyticsRoutes.SetupAnalyticsRoutes(api, st, cfg)
}
