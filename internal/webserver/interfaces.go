package webserver

import (
	"github.com/rpcad/cadlogin/internal/webserver/infrastructure"
	"github.com/rpcad/cadlogin/internal/webserver/model"
)

type CadAPI interface {
	FetchCadSettings(credentials infrastructure.Credentials) (*model.Settings, error)
}
