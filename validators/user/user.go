package userValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/validators"
)

type CreateUserRequest struct {
	Username     string `json:"username" validate:"required,min=3"`
	Password     string `json:"password" validate:"required,min=6"`
	Email        string `json:"email" validate:"required,email"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=admin faculty student"`
	ProfileImage string `json:"profileImage"`
	Department   string `json:"department"`
	Bio          string `json:"bio"`
}

type UpdateUserRequest struct {
	Username     *string `json:"username" validate:"omitempty,min=3"`
	Password     *string `json:"password" validate:"omitempty,min=6"`
	Email        *string `json:"email" validate:"omitempty,email"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Role         *string `json:"role" validate:"omitempty,oneof=admin faculty student"`
	ProfileImage *string `json:"profileImage"`
	Department   *string `json:"department"`
	Bio          *string `json:"bio"`
}

// Fields converts the patch into a field map for the store. Keys are Go
// struct field names so the policy layer and GORM agree on them.
func (r *UpdateUserRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Username != nil {
		fields["Username"] = *r.Username
	}
	if r.Password != nil {
		fields["Password"] = *r.Password
	}
	if r.Email != nil {
		fields["Email"] = *r.Email
	}
	if r.FirstName != nil {
		fields["FirstName"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["LastName"] = *r.LastName
	}
	if r.Role != nil {
		fields["Role"] = *r.Role
	}
	if r.ProfileImage != nil {
		fields["ProfileImage"] = *r.ProfileImage
	}
	if r.Department != nil {
		fields["Department"] = *r.Department
	}
	if r.Bio != nil {
		fields["Bio"] = *r.Bio
	}
	return fields
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := validators.Check(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}
