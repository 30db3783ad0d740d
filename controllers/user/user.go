package userController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"lms/config"
	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/store"
	"lms/utils"
	userValidator "lms/validators/user"
)

func ListUsers(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionList, policy.Resource{Kind: policy.KindUser})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		// Non-admins only ever see themselves in the listing.
		if actor.Role != models.RoleAdmin {
			user, err := st.GetUser(actor.ID)
			if err != nil {
				return middleware.NotFoundResponse(c, "User not found!")
			}
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", []models.User{*user})
		}

		users, err := st.ListUsers(c.Query("role"))
		if err != nil {
			log.Printf("Error fetching users: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
	}
}

func GetUser(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		decision := policy.Evaluate(actor, policy.ActionRead, policy.Resource{Kind: policy.KindUser, OwnerID: id})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		user, err := st.GetUser(id)
		if err != nil {
			return middleware.NotFoundResponse(c, "User not found!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
	}
}

// CreateUser is the admin path for creating accounts of any role.
func CreateUser(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		decision := policy.Evaluate(actor, policy.ActionCreate, policy.Resource{Kind: policy.KindUser})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), cfg.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		user := models.User{
			Username:     reqData.Username,
			Password:     string(hashed),
			Email:        reqData.Email,
			FirstName:    reqData.FirstName,
			LastName:     reqData.LastName,
			Role:         reqData.Role,
			ProfileImage: reqData.ProfileImage,
			Department:   reqData.Department,
			Bio:          reqData.Bio,
		}

		if err := st.CreateUser(&user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
			}
			log.Printf("Error saving user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
		}

		st.LogActivity(actor.ID, "user.create", map[string]interface{}{"userId": user.ID, "role": user.Role})

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", user)
	}
}

func UpdateUser(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		if _, err := st.GetUser(id); err != nil {
			return middleware.NotFoundResponse(c, "User not found!")
		}

		decision := policy.Evaluate(actor, policy.ActionUpdate, policy.Resource{Kind: policy.KindUser, OwnerID: id})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		reqData, ok := c.Locals("validatedUserUpdate").(*userValidator.UpdateUserRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		fields := policy.Restrict(reqData.Fields(), decision.Settable)
		if raw, ok := fields["Password"].(string); ok {
			hashed, err := bcrypt.GenerateFromPassword([]byte(raw), cfg.SaltRound)
			if err != nil {
				log.Printf("Error hashing password: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
			}
			fields["Password"] = string(hashed)
		}

		user, err := st.UpdateUser(id, fields)
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
			}
			log.Printf("Error updating user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
		}

		st.LogActivity(actor.ID, "user.update", map[string]interface{}{"userId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", user)
	}
}

func DeleteUser(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		id, ok := utils.ParseIDParam(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "id must be a positive integer!"})
		}

		decision := policy.Evaluate(actor, policy.ActionDelete, policy.Resource{Kind: policy.KindUser, OwnerID: id})
		if !decision.Allow {
			return middleware.ForbiddenResponse(c)
		}

		deleted, err := st.DeleteUser(id)
		if err != nil {
			log.Printf("Error deleting user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
		}
		if !deleted {
			return middleware.NotFoundResponse(c, "User not found!")
		}

		st.LogActivity(actor.ID, "user.delete", map[string]interface{}{"userId": id})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
	}
}
