package webserver

import (
	"embed"
	"io/fs"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rpcad/cadlogin/internal/i18n"
	"github.com/rpcad/cadlogin/internal/webserver/infrastructure"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

var (
	//go:embed embedded
	embedded embed.FS

	cssFS          fs.FS
	jsFS           fs.FS
	imagesFS       fs.FS
	viewsFS        fs.FS
	translationsFS fs.FS
)

type Config struct {
	Version       string
	APIURL        string
	APITimeout    time.Duration
	CORSOriginURL *string
	ClientURL     *string
	DemoMode      bool
}

func init() {
	var err error

	if cssFS, err = fs.Sub(embedded, "embedded/css"); err != nil {
		log.Fatal(err)
	}
	if jsFS, err = fs.Sub(embedded, "embedded/js"); err != nil {
		log.Fatal(err)
	}
	if imagesFS, err = fs.Sub(embedded, "embedded/images"); err != nil {
		log.Fatal(err)
	}
	if viewsFS, err = fs.Sub(embedded, "embedded/views"); err != nil {
		log.Fatal(err)
	}
	if translationsFS, err = fs.Sub(embedded, "embedded/translations"); err != nil {
		log.Fatal(err)
	}
}

// TranslationsFS returns the translation files shipped with the application
func TranslationsFS() fs.FS {
	return translationsFS
}

// New builds a new Fiber application and set up the required routes
func New(cfg Config, printers map[string]*message.Printer, controllers Controllers, logger *zap.Logger) (*fiber.App, error) {
	engine, err := infrastructure.TemplateEngine(viewsFS, printers)
	if err != nil {
		return nil, err
	}

	supportedLanguages := i18n.Languages(printers)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		AppName:               cfg.Version,
		PassLocalsToViews:     true,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(supportedLanguages, logger),
	})

	UseMiddlewares(app, logger)

	routes(app, controllers, supportedLanguages)

	return app, nil
}

// UseMiddlewares registers the middlewares every request goes through. Panics are
// recovered inside the request logger so those requests get logged too.
func UseMiddlewares(app *fiber.App, logger *zap.Logger) {
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(RequestLogger(logger))
	app.Use(recover.New())
}
