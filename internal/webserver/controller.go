package webserver

import (
	"github.com/rpcad/cadlogin/internal/webserver/controller/auth"
	"go.uber.org/zap"
)

type Controllers struct {
	Auth *auth.Controller
}

func SetupControllers(cfg Config, api CadAPI, logger *zap.Logger) Controllers {
	authCfg := auth.Config{
		CORSOriginURL: cfg.CORSOriginURL,
		ClientURL:     cfg.ClientURL,
		APIURL:        cfg.APIURL,
		DemoMode:      cfg.DemoMode,
	}

	return Controllers{
		Auth: auth.NewController(api, authCfg, logger),
	}
}
