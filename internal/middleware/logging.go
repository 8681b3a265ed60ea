// Package middleware provides HTTP middleware for logging, authentication and
// rate limiting.
package middleware

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger is the process-wide structured logger.
var Logger *slog.Logger

func init() {
	// JSON in production so log shippers can parse it; text locally.
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if env := os.Getenv("APP_ENV"); env == "production" || env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	Logger = slog.New(handler)
}

// StructuredLogger returns a fiber middleware that emits one access-log line
// per request. The level follows the response class: 5xx and handler errors
// log at error, 4xx at warn, everything else at info.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.Int("bytes", len(c.Response().Body())),
			slog.String("ip", c.IP()),
		}
		if rid := c.Locals("requestid"); rid != nil {
			attrs = append(attrs, slog.Any("request_id", rid))
		}
		if uid, ok := c.Locals("userID").(uint); ok {
			attrs = append(attrs, slog.Uint64("user_id", uint64(uid)))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			Logger.Error("http request", attrs...)
		case status >= fiber.StatusBadRequest:
			Logger.Warn("http request", attrs...)
		default:
			Logger.Info("http request", attrs...)
		}

		return err
	}
}
