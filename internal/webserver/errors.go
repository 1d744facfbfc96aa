package webserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rpcad/cadlogin/internal/webserver/infrastructure"
	"go.uber.org/zap"
)

func errorHandler(supportedLanguages []string, logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		} else if errors.Is(err, infrastructure.ErrUpstream) {
			code = fiber.StatusBadGateway
		}

		lang, ok := c.Locals("Lang").(string)
		if !ok {
			lang = chooseBestLanguage(c, supportedLanguages)
		}

		renderErr := c.Status(code).Render("errors/error", fiber.Map{
			"Lang":    lang,
			"Title":   "Error",
			"Code":    code,
			"Message": errorMessage(code),
			"Version": c.App().Config().AppName,
		}, "layout")

		if renderErr != nil {
			logger.Error("could not render error page", zap.Error(renderErr), zap.NamedError("cause", err))
			// In case the Render fails
			return c.Status(code).SendString(errorMessage(code))
		}

		return nil
	}
}

func errorMessage(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "Page not found"
	case fiber.StatusBadGateway:
		return "The CAD API could not be reached. Please try again later."
	default:
		return "Something went wrong"
	}
}
