package announcementController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/store"
	"lms/utils"
	announcementValidator "lms/validators/announcement"
)

func ListAnnouncements(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionList, policy.Resource{Kind: policy.KindAnnouncement})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		announcements, err := st.ListAnnouncements(utils.ParseUintQuery(c, "courseId"))
		if err != nil {
			log.Printf("Error fetching announcements: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully.", announcements)
	}
}

func CreateAnnouncement(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		reqData, ok := c.Locals("validatedAnnouncement").(*announcementValidator.CreateAnnouncementRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		res := policy.Resource{Kind: policy.KindAnnouncement}
		if reqData.CourseID != nil {
			course, err := st.GetCourse(*reqData.CourseID)
			if err != nil {
				return middleware.NotFoundResponse(c, "Course not found!")
			}
			res.FacultyID = course.FacultyID
		}

		decision := policy.Evaluate(actor, policy.ActionCreate, res)
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		// Only admins may post platform-wide; the settable set strips
		// isGlobal for everyone else.
		isGlobal := reqData.IsGlobal
		if decision.Settable != nil && !decision.Settable["IsGlobal"] {
			isGlobal = false
		}
		if reqData.CourseID == nil {
			isGlobal = true
		}

		announcement := models.Announcement{
			CourseID: reqData.CourseID,
			AuthorID: actor.ID,
			Title:    reqData.Title,
			Content:  reqData.Content,
			IsGlobal: isGlobal,
		}

		if err := st.CreateAnnouncement(&announcement); err != nil {
			log.Printf("Error saving announcement: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create announcement!", nil)
		}

		st.LogActivity(actor.ID, "announcement.create", map[string]interface{}{"announcementId": announcement.ID})

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Announcement created successfully.", announcement)
	}
}

func UpdateAnnouncement(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		announcement, err := st.GetAnnouncement(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Announcement not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionUpdate, policy.Resource{
			Kind:    policy.KindAnnouncement,
			ID:      id,
			OwnerID: announcement.AuthorID,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		reqData, ok := c.Locals("validatedAnnouncementUpdate").(*announcementValidator.UpdateAnnouncementRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		fields := policy.Restrict(reqData.Fields(), decision.Settable)

		updated, err := st.UpdateAnnouncement(id, fields)
		if err != nil {
			log.Printf("Error updating announcement: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update announcement!", nil)
		}

		st.LogActivity(actor.ID, "announcement.update", map[string]interface{}{"announcementId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement updated successfully.", updated)
	}
}

func DeleteAnnouncement(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		announcement, err := st.GetAnnouncement(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "Announcement not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionDelete, policy.Resource{
			Kind:    policy.KindAnnouncement,
			ID:      id,
			OwnerID: announcement.AuthorID,
		})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		deleted, err := st.DeleteAnnouncement(id)
		if err != nil {
			log.Printf("Error deleting announcement: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete announcement!", nil)
		}
		if !deleted {
			return middleware.NotFoundResponse(c, "Announcement not found!")
		}

		st.LogActivity(actor.ID, "announcement.delete", map[string]interface{}{"announcementId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement deleted successfully.", nil)
	}
}
