package webserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rpcad/cadlogin/internal/webserver/controller/auth"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// SetLanguage decides which language the page is rendered in and sets it as a local
// variable of the request. A locale saved in the user cookies takes precedence over
// the one in the URL, which takes precedence over the browser preferences.
func SetLanguage(supportedLanguages []string) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		lang := c.Params("lang")
		if lang != "" && !slices.Contains(supportedLanguages, lang) {
			return fiber.ErrNotFound
		}

		if saved := auth.Cookie(c, auth.LocaleCookie); saved != nil && slices.Contains(supportedLanguages, *saved) {
			lang = *saved
		}

		if lang == "" {
			lang = chooseBestLanguage(c, supportedLanguages)
		}

		c.Locals("Lang", lang)
		c.Locals("SupportedLanguages", supportedLanguages)
		c.Locals("Version", c.App().Config().AppName)
		return c.Next()
	}
}

// RequestLogger logs every request once it has been processed, including the ones
// which ended in error.
func RequestLogger(logger *zap.Logger) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestID(c)),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("server error", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("client error", fields...)
		default:
			logger.Info("request", fields...)
		}

		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
