package assignmentRoutes

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	assignmentController "lms/controllers/assignment"
	"lms/middleware"
	"lms/store"
	assignmentValidator "lms/validators/assignment"
)

func SetupAssignmentRoutes(api fiber.Router, st *store.Store, cfg *config.Config) {
	assignmentGroup := api.Group("/assignments", middleware.Protected(cfg))

	assignmentGroup.Get("/", assignmentController.ListAssignments(st))
	assignmentGroup.Post("/", assignmentValidator.CreateAssignment(), assignmentController.CreateAssignment(st))
	assignmentGroup.Get("/:id", assignmentController.GetAssignment(st))
	assignmentGroup.Put("/:id", assignmentValidator.UpdateAssignment(), assignmentController.UpdateAssignment(st))
	assignmentGroup.Delete("/:id", assignmentController.DeleteAssignment(st))
}
