package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"timetrack-service/internal/config"
	"timetrack-service/internal/services"
)

var validate = validator.New()

// respondError maps service errors to HTTP statuses. Sentinel messages go to
// the client verbatim; anything unexpected becomes a generic 500 with the
// cause logged server-side only.
func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	message := err.Error()
	switch status {
	case fiber.StatusNotFound:
		message = "Not found"
	case fiber.StatusInternalServerError:
		config.Logger.Errorw("internal error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		message = "Internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrEndBeforeStart),
		errors.Is(err, services.ErrEntryStopped):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrProjectAccess),
		errors.Is(err, services.ErrAccessDenied):
		return fiber.StatusForbidden
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrTimerRunning):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// parseDate accepts RFC3339 timestamps or plain dates (2006-01-02).
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
