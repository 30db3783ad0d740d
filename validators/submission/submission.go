package submissionValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/validators"
)

type CreateSubmissionRequest struct {
	AssignmentID uint   `json:"assignmentId" validate:"required"`
	StudentID    uint   `json:"studentId"`
	Content      string `json:"content" validate:"required"`
	FileURL      string `json:"fileUrl"`
}

type UpdateSubmissionRequest struct {
	Content  *string  `json:"content"`
	FileURL  *string  `json:"fileUrl"`
	Score    *float64 `json:"score" validate:"omitempty,gte=0"`
	Grade    *string  `json:"grade"`
	Feedback *string  `json:"feedback"`
	Status   *string  `json:"status" validate:"omitempty,oneof=submitted graded late resubmitted"`
}

func (r *UpdateSubmissionRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Content != nil {
		fields["Content"] = *r.Content
	}
	if r.FileURL != nil {
		fields["FileURL"] = *r.FileURL
	}
	if r.Score != nil {
		fields["Score"] = *r.Score
	}
	if r.Grade != nil {
		fields["Grade"] = *r.Grade
	}
	if r.Feedback != nil {
		fields["Feedback"] = *r.Feedback
	}
	if r.Status != nil {
		fields["Status"] = *r.Status
	}
	return fields
}

func CreateSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSubmissionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

func UpdateSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSubmissionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedSubmissionUpdate", reqData)
		return c.Next()
	}
}
