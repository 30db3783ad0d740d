package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"lms/config"
	"lms/policy"
)

// GenerateJWT generates a bearer token carrying the resolved identity
func GenerateJWT(cfg *config.Config, userID uint, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTKey))
}

// Protected checks for a valid bearer token and stores the actor
// identity in the request context. Every endpoint except login,
// register and the static surface sits behind it.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format!", nil)
		}

		tokenString := authHeader[len("Bearer "):]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTKey), nil
		})
		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token!", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["userId"] == nil || claims["role"] == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload!", nil)
		}

		// JWT numeric claims decode as float64
		userID := claims["userId"].(float64)
		role, _ := claims["role"].(string)

		c.Locals("userId", uint(userID))
		c.Locals("userRole", role)

		return c.Next()
	}
}

// Actor reads the identity resolved by Protected. The second return is
// false when the request never passed the auth middleware.
func Actor(c *fiber.Ctx) (policy.Actor, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return policy.Actor{}, false
	}
	role, ok := c.Locals("userRole").(string)
	if !ok {
		return policy.Actor{}, false
	}
	return policy.Actor{ID: userID, Role: role}, true
}
