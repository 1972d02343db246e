package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"timetrack-service/internal/models"
)

// AuthCookie is the cookie the browser client stores the token in. The
// Authorization header and the cookie are accepted interchangeably.
const AuthCookie = "auth-token"

const principalKey = "principal"

// TokenParser verifies a bearer token and recovers the principal.
type TokenParser interface {
	ParseToken(token string) (models.Principal, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated principal for the handler.
func RequireAuth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		principal, err := parser.ParseToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// RequireAdmin rejects authenticated principals whose role is not ADMIN.
// It must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Principal(c).IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
		}
		return c.Next()
	}
}

// WithPrincipal injects a fixed principal, bypassing token verification.
// Intended for handler tests; it keeps the locals key in one place.
func WithPrincipal(principal models.Principal) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// Principal returns the authenticated identity set by RequireAuth.
func Principal(c *fiber.Ctx) models.Principal {
	principal, _ := c.Locals(principalKey).(models.Principal)
	return principal
}

func tokenFromRequest(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Cookies(AuthCookie)
}
