package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Inversiones-api/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID propaga el X-Request-Id recibido o genera uno nuevo.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set(requestIDHeader, requestID)
		return c.Next()
	}
}

// AccessLog registra cada petición con su estado y latencia.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// el ErrorHandler aún no ha corrido; se registra el código que producirá
			var e *fiber.Error
			if errors.As(err, &e) {
				c.Status(e.Code)
			} else {
				c.Status(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := log.Info()
		if status >= 500 {
			event = log.Error()
		} else if status >= 400 {
			event = log.Warn()
		}

		requestID, _ := c.Locals(LocalRequestID).(string)
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("client_ip", c.IP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", requestID).
			Msg("http request")
		return err
	}
}
