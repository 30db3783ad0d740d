package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	authController "lms/controllers/auth"
	"lms/middleware"
	"lms/store"
	authValidator "lms/validators/auth"
)

func SetupAuthRoutes(api fiber.Router, st *store.Store, cfg *config.Config) {
	authGroup := api.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register(st, cfg))
	authGroup.Post("/login", authValidator.Login(), authController.Login(st, cfg))
	authGroup.Post("/logout", middleware.Protected(cfg), authController.Logout(st))
	authGroup.Get("/session", middleware.Protected(cfg), authController.Session(st))
	authGroup.Get("/me", middleware.Protected(cfg), authController.Session(st))
}
