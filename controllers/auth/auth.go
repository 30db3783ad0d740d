package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"lms/config"
	"lms/middleware"
	"lms/models"
	"lms/store"
	authValidator "lms/validators/auth"
)

// Register is the self-registration endpoint. The role is always
// student; privileged accounts are created by admins via /users.
func Register(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), cfg.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		user := models.User{
			Username:  reqData.Username,
			Password:  string(hashed),
			Email:     reqData.Email,
			FirstName: reqData.FirstName,
			LastName:  reqData.LastName,
			Role:      models.RoleStudent,
		}

		if err := st.CreateUser(&user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
			}
			log.Printf("Error saving user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
		}

		st.LogActivity(user.ID, "user.register", map[string]interface{}{"username": user.Username})

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
	}
}

func Login(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		user, err := st.GetUserByUsername(reqData.Username)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		}

		token, err := middleware.GenerateJWT(cfg, user.ID, user.Username, user.Role)
		if err != nil {
			log.Printf("Error generating token: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		st.LogActivity(user.ID, "user.login", map[string]interface{}{"username": user.Username})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully.", fiber.Map{
			"user":  user,
			"token": token,
		})
	}
}

// Logout exists for API symmetry; tokens are stateless and simply
// expire.
func Logout(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if actor, ok := middleware.Actor(c); ok {
			st.LogActivity(actor.ID, "user.logout", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
	}
}

// Session returns the account behind the presented token.
func Session(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		user, err := st.GetUser(actor.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Session active.", user)
	}
}
