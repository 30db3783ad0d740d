package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	courseController "lms/controllers/course"
	"lms/middleware"
	"lms/store"
	courseValidator "lms/validators/course"
)

func SetupCourseRoutes(api fiber.Router, st *store.Store, cfg *config.Config) {
	courseGroup := api.Group("/courses", middleware.Protected(cfg))

	courseGroup.Get("/", courseController.ListCourses(st))
	courseGroup.Post("/", courseValidator.CreateCourse(), courseController.CreateCourse(st))
	courseGroup.Get("/:id", courseController.GetCourse(st))
	courseGroup.Put("/:id", courseValidator.UpdateCourse(), courseController.UpdateCourse(st))
	courseGroup.Delete("/:id", courseController.DeleteCourse(st))
}
