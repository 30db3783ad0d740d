package enrollmentValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/validators"
)

type CreateEnrollmentRequest struct {
	// StudentID may be omitted by students; the handler pins it to the
	// actor. Admins must supply it.
	StudentID uint `json:"studentId"`
	CourseID  uint `json:"courseId" validate:"required"`
}

type UpdateEnrollmentRequest struct {
	Progress *float64 `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Grade    *string  `json:"grade"`
	Status   *string  `json:"status" validate:"omitempty,oneof=active completed dropped"`
}

func (r *UpdateEnrollmentRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Progress != nil {
		fields["Progress"] = *r.Progress
	}
	if r.Grade != nil {
		fields["Grade"] = *r.Grade
	}
	if r.Status != nil {
		fields["Status"] = *r.Status
	}
	return fields
}

func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

func UpdateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateEnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedEnrollmentUpdate", reqData)
		return c.Next()
	}
}
