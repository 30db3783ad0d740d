package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	userController "lms/controllers/user"
	"lms/middleware"
	"lms/store"
	userValidator "lms/validators/user"
)

func SetupUserRoutes(api fiber.Router, st *store.Store, cfg *config.Config) {
	userGroup := api.Group("/users", middleware.Protected(cfg))

	userGroup.Get("/", userController.ListUsers(st))
	userGroup.Post("/", userValidator.CreateUser(), userController.CreateUser(st, cfg))
	userGroup.Get("/:id", userController.GetUser(st))
	userGroup.Put("/:id", userValidator.UpdateUser(), userController.UpdateUser(st, cfg))
	userGroup.Delete("/:id", userController.DeleteUser(st))
}
