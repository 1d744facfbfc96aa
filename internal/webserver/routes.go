package webserver

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

func routes(app *fiber.App, controllers Controllers, supportedLanguages []string) {
	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	app.Use("/js", filesystem.New(filesystem.Config{
		Root: http.FS(jsFS),
	}))

	app.Use("/images", filesystem.New(filesystem.Config{
		Root: http.FS(imagesFS),
	}))

	setLanguage := SetLanguage(supportedLanguages)

	app.Get("/login", setLanguage, controllers.Auth.Login)
	app.Get("/:lang/login", setLanguage, controllers.Auth.Login)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login")
	})
}
