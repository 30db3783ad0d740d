package announcementValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/validators"
)

type CreateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required,min=3"`
	Content  string `json:"content" validate:"required"`
	CourseID *uint  `json:"courseId"`
	IsGlobal bool   `json:"isGlobal"`
}

type UpdateAnnouncementRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=3"`
	Content  *string `json:"content"`
	CourseID *uint   `json:"courseId"`
	IsGlobal *bool   `json:"isGlobal"`
}

func (r *UpdateAnnouncementRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["Title"] = *r.Title
	}
	if r.Content != nil {
		fields["Content"] = *r.Content
	}
	if r.CourseID != nil {
		fields["CourseID"] = *r.CourseID
	}
	if r.IsGlobal != nil {
		fields["IsGlobal"] = *r.IsGlobal
	}
	return fields
}

func CreateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAnnouncementRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}

func UpdateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateAnnouncementRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedAnnouncementUpdate", reqData)
		return c.Next()
	}
}
