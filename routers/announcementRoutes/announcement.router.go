package announcementRoutes

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	announcementController "lms/controllers/announcement"
	"lms/middleware"
	"lms/store"
	announcementValidator "lms/validators/announcement"
)

func SetupAnnouncementRoutes(api fiber.Router, st *store.Store, cfg *config.Config) {
	announcementGroup := api.Group("/announcements", middleware.Protected(cfg))

	announcementGroup.Get("/", announcementController.ListAnnouncements(st))
	announcementGroup.Post("/", announcementValidator.CreateAnnouncement(), announcementController.CreateAnnouncement(st))
	announcementGroup.Put("/:id", announcementValidator.UpdateAnnouncement(), announcementController.UpdateAnnouncement(st))
	announcementGroup.Delete("/:id", announcementController.DeleteAnnouncement(st))
}
