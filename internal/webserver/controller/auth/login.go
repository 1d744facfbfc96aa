package auth

import (
	"errors"
	"net/url"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/rpcad/cadlogin/internal/diagnostics"
	"github.com/rpcad/cadlogin/internal/webserver/infrastructure"
	"github.com/rpcad/cadlogin/internal/webserver/model"
	"go.uber.org/zap"
)

const defaultRedirect = "/citizen"

func (a *Controller) Login(c *fiber.Ctx) error {
	savedLocale := Cookie(c, LocaleCookie)
	savedDarkTheme := Cookie(c, DarkThemeCookie)

	cad, err := a.settings.FetchCadSettings(credentials(c))
	if err != nil {
		fields := []zap.Field{zap.Error(err), zap.String("path", infrastructure.CadSettingsPath)}
		var upstreamErr *infrastructure.UpstreamError
		if errors.As(err, &upstreamErr) {
			fields = append(fields, zap.Int("upstream_status", upstreamErr.Status))
		}
		a.logger.Error("could not retrieve CAD settings", fields...)
		return err
	}

	diagnosis := diagnostics.Resolve(a.config.CORSOriginURL, a.config.ClientURL)

	props := model.LoginPageProps{
		IsLocalhost:    diagnosis.IsLocalhost,
		IsCORSError:    diagnosis.IsCORSError,
		CORSOriginURL:  diagnosis.CORSOriginURL,
		Cad:            cad,
		SavedLocale:    savedLocale,
		SavedDarkTheme: savedDarkTheme,
	}

	return c.Render("auth/login", fiber.Map{
		"Title":      "Login",
		"Props":      props,
		"DarkTheme":  props.DarkTheme(),
		"DemoMode":   a.config.DemoMode,
		"APIURL":     a.config.APIURL,
		"RedirectTo": RedirectTarget(c.Query("from")),
	}, "layout")
}

// RedirectTarget returns the path the browser navigates to after a successful login.
// Only paths on this same site are accepted. Browsers drop tabs and newlines from URLs
// before parsing them, so values carrying control characters are rejected.
func RedirectTarget(from string) string {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return defaultRedirect
	}
	if strings.ContainsFunc(from, unicode.IsControl) {
		return defaultRedirect
	}
	target, err := url.Parse(from)
	if err != nil || target.Scheme != "" || target.Host != "" {
		return defaultRedirect
	}
	return from
}

func credentials(c *fiber.Ctx) infrastructure.Credentials {
	return infrastructure.Credentials{
		Cookie:        c.Get(fiber.HeaderCookie),
		Authorization: c.Get(fiber.HeaderAuthorization),
	}
}
