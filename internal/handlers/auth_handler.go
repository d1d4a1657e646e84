package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hiring-copilot/internal/middleware"
	"hiring-copilot/internal/models"
	"hiring-copilot/internal/repositories"
	"hiring-copilot/internal/services"
)

type AuthHandler struct {
	userRepo    repositories.UserRepository
	authService services.AuthService
}

func NewAuthHandler(
	userRepo repositories.UserRepository,
	authService services.AuthService,
) *AuthHandler {
	return &AuthHandler{
		userRepo:    userRepo,
		authService: authService,
	}
}

// HandleRegister handles POST /register
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "username, email and password are required",
		})
	}

	if _, err := h.userRepo.FindByUsername(req.Username); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username already registered",
		})
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to look up user",
		})
	}

	passwordHash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register user",
		})
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
	}

	if err := h.userRepo.Create(user); err != nil {
		// A concurrent register can still trip the unique constraints.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username already registered",
		})
	}

	return c.JSON(toUserResponse(user))
}

// HandleToken handles POST /token. The front end submits an OAuth2 password
// form: username and password fields, bearer token back.
func (h *AuthHandler) HandleToken(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.userRepo.FindByUsername(username)
	if err != nil || !h.authService.VerifyPassword(user.PasswordHash, password) {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect username or password",
		})
	}

	token, err := h.authService.CreateAccessToken(user.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue token",
		})
	}

	return c.JSON(models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleMe handles GET /users/me/
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "could not validate credentials",
		})
	}

	return c.JSON(toUserResponse(user))
}

func toUserResponse(user *models.User) models.UserResponse {
	return models.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
	}
}
