package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hiring-copilot/internal/models"
	"hiring-copilot/internal/repositories"
	"hiring-copilot/internal/services"
)

const userLocalKey = "currentUser"

// AuthRequired validates the bearer token and loads the caller's user record
// into the request context. Requests without a valid token are rejected with
// 401 before any handler logic runs.
func AuthRequired(authService services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if auth == "" || token == auth {
			return unauthorized(c)
		}

		username, err := authService.ValidateToken(token)
		if err != nil {
			return unauthorized(c)
		}

		user, err := userRepo.FindByUsername(username)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthRequired.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "could not validate credentials",
	})
}
