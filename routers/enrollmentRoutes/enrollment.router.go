package enrollmentRoutes

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	enrollmentController "lms/controllers/enrollment"
	"lms/middleware"
	"lms/store"
	enrollmentValidator "lms/validators/enrollment"
)

func SetupEnrollmentRoutes(api fiber.Router, st *store.Store, cfg *config.Config) {
	enrollmentGroup := api.Group("/enrollments", middleware.Protected(cfg))

	enrollmentGroup.Get("/", enrollmentController.ListEnrollments(st))
	enrollmentGroup.Post("/", enrollmentValidator.CreateEnrollment(), enrollmentController.CreateEnrollment(st))
	enrollmentGroup.Put("/:id", enrollmentValidator.UpdateEnrollment(), enrollmentController.UpdateEnrollment(st))
	enrollmentGroup.Delete("/:id", enrollmentController.DeleteEnrollment(st))
}
