package analyticsRoutes

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	analyticsController "lms/controllers/analytics"
	"lms/middleware"
	"lms/store"
)

func SetupAnalyticsRoutes(api fiber.Router, st *store.Store, cfg *config.Config) {
	analyticsGroup := api.Group("/analytics", middleware.Protected(cfg))

	analyticsGroup.Get("/users", analyticsController.UserStats(st))
	analyticsGroup.Get("/courses", analyticsController.CourseStats(st))
	analyticsGroup.Get("/assignments", analyticsController.AssignmentStats(st))
	analyticsGroup.Get("/faculty/:id", analyticsController.FacultyStats(st))
	analyticsGroup.Get("/student/:id", analyticsController.StudentStats(st))
	analyticsGroup.Get("/activity", analyticsController.ActivityFeed(st))
}
