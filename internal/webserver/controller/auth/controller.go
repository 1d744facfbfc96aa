package auth

import (
	"github.com/rpcad/cadlogin/internal/webserver/infrastructure"
	"github.com/rpcad/cadlogin/internal/webserver/model"
	"go.uber.org/zap"
)

type settingsFetcher interface {
	FetchCadSettings(credentials infrastructure.Credentials) (*model.Settings, error)
}

type Controller struct {
	settings settingsFetcher
	config   Config
	logger   *zap.Logger
}

type Config struct {
	// nil means the environment variable is not set
	CORSOriginURL *string
	ClientURL     *string
	APIURL        string
	DemoMode      bool
}

func NewController(settings settingsFetcher, cfg Config, logger *zap.Logger) *Controller {
	return &Controller{
		settings: settings,
		config:   cfg,
		logger:   logger,
	}
}
