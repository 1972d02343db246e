package handlers

import (
	"github.com/gofiber/fiber/v2"

	"timetrack-service/internal/middleware"
	"timetrack-service/internal/models"
	"timetrack-service/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account
// @Summary Register a new account
// @Description Create an account and return it with a bearer token. The first account becomes the admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.RegisterRequest true "Account data"
// @Success 200 {object} models.AuthResponse "Account created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, email, and password (min 8 characters) are required"})
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Login verifies credentials
// @Summary Log in
// @Description Verify email and password and return the account with a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse "Logged in"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Me returns the authenticated account
// @Summary Get the current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Current account"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.GetUser(middleware.Principal(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// ListUsers returns all accounts
// @Summary List all users
// @Description Admin-only listing of every account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of users"
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.authService.ListUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}
