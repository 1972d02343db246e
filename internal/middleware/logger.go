package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"timetrack-service/internal/config"
)

// RequestLogger logs one line per request with a generated request id.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.New().String()
		c.Locals("requestID", requestID)

		err := c.Next()

		config.Logger.Infow("request",
			"requestID", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"clientIP", c.IP(),
			"latency", time.Since(start).String(),
		)
		return err
	}
}
