package courseValidator

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/validators"
)

type CreateCourseRequest struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Description string     `json:"description" validate:"required"`
	FacultyID   uint       `json:"facultyId"`
	Status      string     `json:"status" validate:"omitempty,oneof=active inactive"`
	Category    string     `json:"category"`
	Semester    string     `json:"semester"`
	Year        int        `json:"year"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type UpdateCourseRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3"`
	Description *string    `json:"description"`
	FacultyID   *uint      `json:"facultyId"`
	Status      *string    `json:"status" validate:"omitempty,oneof=active inactive"`
	Category    *string    `json:"category"`
	Semester    *string    `json:"semester"`
	Year        *int       `json:"year"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

func (r *UpdateCourseRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["Title"] = *r.Title
	}
	if r.Description != nil {
		fields["Description"] = *r.Description
	}
	if r.FacultyID != nil {
		fields["FacultyID"] = *r.FacultyID
	}
	if r.Status != nil {
		fields["Status"] = *r.Status
	}
	if r.Category != nil {
		fields["Category"] = *r.Category
	}
	if r.Semester != nil {
		fields["Semester"] = *r.Semester
	}
	if r.Year != nil {
		fields["Year"] = *r.Year
	}
	if r.StartDate != nil {
		fields["StartDate"] = *r.StartDate
	}
	if r.EndDate != nil {
		fields["EndDate"] = *r.EndDate
	}
	return fields
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
