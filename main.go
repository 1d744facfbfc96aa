package main

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/rpcad/cadlogin/internal/i18n"
	"github.com/rpcad/cadlogin/internal/webserver"
	"github.com/rpcad/cadlogin/internal/webserver/infrastructure"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := readConfig(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	logger, err := infrastructure.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(fmt.Sprintf("Error setting up logger: %s", err))
	}
	defer logger.Sync()

	printers, err := i18n.Printers(translations(cfg.TranslationsDir, afero.NewOsFs()), "en")
	if err != nil {
		logger.Fatal("error loading translations", zap.Error(err), zap.String("dir", cfg.TranslationsDir))
	}

	webserverConfig := webserver.Config{
		Version:       version,
		APIURL:        cfg.APIURL,
		APITimeout:    cfg.APITimeout,
		CORSOriginURL: lookupEnv("CORS_ORIGIN_URL"),
		ClientURL:     lookupEnv("NEXT_PUBLIC_CLIENT_URL"),
		DemoMode:      cfg.DemoMode,
	}

	api := infrastructure.NewAPI(cfg.APIURL, cfg.APITimeout)
	controllers := webserver.SetupControllers(webserverConfig, api, logger)
	app, err := webserver.New(webserverConfig, printers, controllers, logger)
	if err != nil {
		logger.Fatal("error setting up webserver", zap.Error(err))
	}

	logger.Info("CAD login page started",
		zap.String("version", version),
		zap.Int("port", cfg.Port),
		zap.String("api", api.BaseURL()),
	)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal("webserver stopped", zap.Error(err))
	}
}

// translations returns the embedded translations, unless a custom directory is set
func translations(dir string, appFs afero.Fs) fs.FS {
	if dir == "" {
		return webserver.TranslationsFS()
	}
	return afero.NewIOFS(afero.NewBasePathFs(appFs, dir))
}
