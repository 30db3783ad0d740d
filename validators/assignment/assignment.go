package assignmentValidator

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/validators"
)

type CreateAssignmentRequest struct {
	CourseID    uint      `json:"courseId" validate:"required"`
	Title       string    `json:"title" validate:"required,min=3"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	MaxScore    int       `json:"maxScore" validate:"gte=0"`
	Status      string    `json:"status" validate:"omitempty,oneof=draft published closed"`
	Type        string    `json:"type" validate:"omitempty,oneof=assignment quiz exam project"`
}

type UpdateAssignmentRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxScore    *int       `json:"maxScore" validate:"omitempty,gte=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft published closed"`
	Type        *string    `json:"type" validate:"omitempty,oneof=assignment quiz exam project"`
}

func (r *UpdateAssignmentRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["Title"] = *r.Title
	}
	if r.Description != nil {
		fields["Description"] = *r.Description
	}
	if r.DueDate != nil {
		fields["DueDate"] = *r.DueDate
	}
	if r.MaxScore != nil {
		fields["MaxScore"] = *r.MaxScore
	}
	if r.Status != nil {
		fields["Status"] = *r.Status
	}
	if r.Type != nil {
		fields["Type"] = *r.Type
	}
	return fields
}

func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAssignmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

func UpdateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateAssignmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedAssignmentUpdate", reqData)
		return c.Next()
	}
}
