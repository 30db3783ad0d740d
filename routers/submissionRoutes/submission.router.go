package submissionRoutes

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	submissionController "lms/controllers/submission"
	"lms/middleware"
	"lms/store"
	submissionValidator "lms/validators/submission"
)

func SetupSubmissionRoutes(api fiber.Router, st *store.Store, cfg *config.Config) {
	submissionGroup := api.Group("/submissions", middleware.Protected(cfg))

	submissionGroup.Get("/", submissionController.ListSubmissions(st))
	submissionGroup.Post("/", submissionValidator.CreateSubmission(), submissionController.CreateSubmission(st))
	submissionGroup.Get("/:id", submissionController.GetSubmission(st))
	submissionGroup.Put("/:id", submissionValidator.UpdateSubmission(), submissionController.UpdateSubmission(st))
	submissionGroup.Post("/:id/file", submissionController.UploadSubmissionFile(st, cfg))
}
